package transport

import (
	"github.com/gin-gonic/gin"
)

// Render answers with the named HTML page, or with data as JSON when the client asks for it.
func Render(c *gin.Context, code int, page string, data any) {
	c.Negotiate(code, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: page,
		Data:     data,
	})
}

func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}
