package transport

import (
	"net/http"
	"time"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader  = "X-Request-ID"
	AdminTokenHeader = "x-admin-token"
	AdminTokenCookie = "admin_token"
	LoginPath        = "/judges/login"
)

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		logging.Log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Debug("request served")
	}
}

// AdminAuthMiddleware accepts the admin token from the header or the admin cookie.
func AdminAuthMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if token == "" {
			token, _ = c.Cookie(AdminTokenCookie)
		}

		if token == "" || token != expected {
			logging.Log.Warnf("ADMIN: Unauthorized access attempt to %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// JudgeSessionMiddleware loads the judge session once per request. Requests without a usable
// session are sent to the login page.
func JudgeSessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := manager.Load(c)
		if sess == nil {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}
		session.Attach(c, sess)
		c.Next()
	}
}
