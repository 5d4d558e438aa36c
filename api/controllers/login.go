package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/api/models"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/session"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/gin-gonic/gin"
)

const judgesHome = "/judges"

type LoginController struct {
	judgesStorage storage.JudgeStorage
	sessions      *session.Manager
}

func NewLoginController(judgeStorage storage.JudgeStorage, sessions *session.Manager) *LoginController {
	return &LoginController{
		judgesStorage: judgeStorage,
		sessions:      sessions,
	}
}

func (c *LoginController) RegisterRoutes(engine *gin.Engine) {
	engine.GET(transport.LoginPath, c.loginPage)
	engine.POST(transport.LoginPath, c.login)
	engine.POST("/judges/logout", c.logout)
}

// loginPage godoc
// @Summary Judge login page
// @Description Shows the login form, or redirects to the judging page when a session exists
// @Tags judges
// @Produce html,json
// @Success 200 {object} models.LoginView
// @Success 303 "Already logged in"
// @Router /judges/login [get]
func (c *LoginController) loginPage(g *gin.Context) {
	if sess := c.sessions.Load(g); sess != nil {
		g.Redirect(http.StatusSeeOther, judgesHome)
		return
	}
	transport.Render(g, http.StatusOK, "login.html", &models.LoginView{})
}

// login godoc
// @Summary Judge login
// @Description Authenticates the judge against the backend and starts a session
// @Tags judges
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param login body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginView
// @Success 303 "Logged in, redirect to the judging page"
// @Failure 400 {object} models.LoginView "Missing credentials"
// @Failure 401 {object} models.LoginView "Wrong credentials"
// @Failure 502 {object} models.LoginView "Authentication service unavailable"
// @Router /judges/login [post]
func (c *LoginController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBind(&req); err != nil {
		transport.Render(g, http.StatusBadRequest, "login.html", &models.LoginView{Error: "Yêu cầu không hợp lệ"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	view := &models.LoginView{Username: req.Username}
	if req.Username == "" || req.Password == "" {
		view.Error = "Vui lòng nhập tên đăng nhập và mật khẩu"
		transport.Render(g, http.StatusBadRequest, "login.html", view)
		return
	}

	judge, err := c.judgesStorage.Authenticate(g.Request.Context(), req.Username, req.Password)
	if err != nil {
		logging.Log.Warnf("SESSION: login failed for %s: %v", req.Username, err)
		if errors.Is(err, storage.ErrUnauthorized) {
			view.Error = loginMessage(err)
			transport.Render(g, http.StatusUnauthorized, "login.html", view)
			return
		}
		view.Error = "Không thể kết nối máy chủ xác thực"
		transport.Render(g, http.StatusBadGateway, "login.html", view)
		return
	}

	if _, err := c.sessions.Start(g, *judge); err != nil {
		logging.Log.Errorf("SESSION: could not start session for judge %d: %v", judge.ID, err)
		view.Error = "Không thể tạo phiên đăng nhập"
		transport.Render(g, http.StatusInternalServerError, "login.html", view)
		return
	}

	if transport.WantsJSON(g) {
		g.JSON(http.StatusOK, &models.LoginView{Username: judge.Username, Judge: judge})
		return
	}
	g.Redirect(http.StatusSeeOther, judgesHome)
}

// logout godoc
// @Summary Judge logout
// @Tags judges
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Success 303 "Redirect to the login page"
// @Router /judges/logout [post]
func (c *LoginController) logout(g *gin.Context) {
	c.sessions.End(g)
	if transport.WantsJSON(g) {
		g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged out"})
		return
	}
	g.Redirect(http.StatusSeeOther, transport.LoginPath)
}

// loginMessage prefers the backend message over the generic one.
func loginMessage(err error) string {
	var apiErr *storage.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "\n"); i >= 0 {
		msg = strings.TrimSpace(msg[i+1:])
	}
	if msg == "" || msg == storage.ErrUnauthorized.Error() {
		return "Sai tên đăng nhập hoặc mật khẩu"
	}
	return msg
}
