package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/api/models"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	adminScoresPath = "/admin/teams-score-final"
	adminScoresPage = "admin_scores.html"
	adminLoginPage  = "admin_login.html"
)

type AdminController struct {
	finalScoresStorage storage.FinalScoreStorage
	teamsStorage       storage.TeamStorage
	judgesStorage      storage.JudgeStorage
	token              string
	secureCookie       bool
	teamLimit          int
}

func NewAdminController(finalScoreStorage storage.FinalScoreStorage, teamStorage storage.TeamStorage, judgeStorage storage.JudgeStorage, token string, secureCookie bool, teamLimit int) *AdminController {
	return &AdminController{
		finalScoresStorage: finalScoreStorage,
		teamsStorage:       teamStorage,
		judgesStorage:      judgeStorage,
		token:              token,
		secureCookie:       secureCookie,
		teamLimit:          teamLimit,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/admin/login", c.loginPage)
	engine.POST("/admin/login", c.login)

	group := engine.Group(adminScoresPath, transport.AdminAuthMiddleware(c.token))
	group.GET("", c.listFinalScores)
	group.POST("", c.saveFinalScore)
	group.POST("/:id/delete", c.deleteFinalScore)
	group.DELETE("/:id", c.deleteFinalScore)
}

func (c *AdminController) loginPage(g *gin.Context) {
	transport.Render(g, http.StatusOK, adminLoginPage, &models.ErrorResponse{})
}

// login godoc
// @Summary Admin login
// @Description Checks the admin token and stores it in the admin cookie for browser use
// @Tags admin
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param login body models.AdminLoginRequest true "Admin token"
// @Success 200 {object} models.MessageResponse
// @Success 303 "Redirect to the final score management page"
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/login [post]
func (c *AdminController) login(g *gin.Context) {
	var req models.AdminLoginRequest
	if err := g.ShouldBind(&req); err != nil {
		logging.Log.Warnf("ADMIN: invalid login body: %v", err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if c.token == "" || strings.TrimSpace(req.Token) != c.token {
		logging.Log.Warnf("ADMIN: rejected admin login")
		transport.Render(g, http.StatusUnauthorized, adminLoginPage, &models.ErrorResponse{Error: "Mã quản trị không đúng"})
		return
	}

	g.SetSameSite(http.SameSiteLaxMode)
	g.SetCookie(transport.AdminTokenCookie, c.token, 0, "/admin", "", c.secureCookie, true)
	logging.Log.Info("ADMIN: admin logged in")

	if transport.WantsJSON(g) {
		g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged in"})
		return
	}
	g.Redirect(http.StatusSeeOther, adminScoresPath)
}

// view loads the records and the directory concurrently and resolves names.
func (c *AdminController) view(ctx context.Context, form *models.FinalScoreRequest, editID string) *models.AdminScoresView {
	var (
		records []*storage.FinalScoreRecord
		dir     *scoring.Directory
		listErr error
		g       errgroup.Group
	)
	g.Go(func() error {
		records, listErr = c.finalScoresStorage.GetAll(ctx)
		return nil
	})
	g.Go(func() error {
		dir = scoring.LoadDirectory(ctx, c.teamsStorage, c.judgesStorage, c.teamLimit)
		return nil
	})
	_ = g.Wait()

	view := &models.AdminScoresView{
		Records:  make([]models.FinalScoreRow, 0, len(records)),
		Teams:    make([]models.Option, 0, len(dir.Teams)),
		Judges:   make([]models.Option, 0, len(dir.Judges)),
		Criteria: scoring.TeamCriteria,
		Form:     form,
	}
	if listErr != nil {
		logging.Log.Errorf("ADMIN: failed to list final scores: %v", listErr)
		view.Error = "Không thể tải danh sách điểm"
	}

	for _, r := range records {
		if r == nil {
			continue
		}
		view.Records = append(view.Records, models.FinalScoreRow{
			Record:    r,
			TeamName:  dir.TeamName(r.TeamID),
			JudgeName: dir.JudgeName(r.JudgeID),
		})
		if editID != "" && r.ID.String() == editID && view.Form == nil {
			view.Form = models.FinalScoreRequestFromRecord(r)
		}
	}
	for _, t := range dir.Teams {
		if t != nil {
			view.Teams = append(view.Teams, models.Option{ID: t.ID, Name: dir.TeamName(t.ID)})
		}
	}
	for _, j := range dir.Judges {
		if j != nil {
			view.Judges = append(view.Judges, models.Option{ID: j.ID, Name: dir.JudgeName(j.ID)})
		}
	}

	if view.Form == nil {
		view.Form = &models.FinalScoreRequest{}
	}
	view.Editing = view.Form.ID != ""
	return view
}

// @Security AdminToken
// listFinalScores godoc
// @Summary List final-round score records
// @Tags admin
// @Produce html,json
// @Param edit query string false "Id of the record to edit"
// @Success 200 {object} models.AdminScoresView
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/teams-score-final [get]
func (c *AdminController) listFinalScores(g *gin.Context) {
	view := c.view(g.Request.Context(), nil, g.Query("edit"))
	logging.Log.Infof("ADMIN: listed %d final scores", len(view.Records))
	transport.Render(g, http.StatusOK, adminScoresPage, view)
}

// @Security AdminToken
// saveFinalScore godoc
// @Summary Create or update a final-round score record
// @Description Creates a record when id is empty, updates it otherwise. Criteria are clamped to the rubric maxima.
// @Tags admin
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param score body models.FinalScoreRequest true "Final score"
// @Success 200 {object} models.AdminScoresView
// @Failure 400 {object} models.AdminScoresView "Team or judge missing"
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.AdminScoresView "Backend failure"
// @Router /admin/teams-score-final [post]
func (c *AdminController) saveFinalScore(g *gin.Context) {
	var req models.FinalScoreRequest
	if err := g.ShouldBind(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	req.ID = strings.TrimSpace(req.ID)

	ctx := g.Request.Context()
	payload, ok := req.ToPayload()
	if !ok {
		view := c.view(ctx, &req, "")
		view.Error = "Vui lòng chọn đội và giám khảo"
		transport.Render(g, http.StatusBadRequest, adminScoresPage, view)
		return
	}

	var err error
	if req.ID == "" {
		_, err = c.finalScoresStorage.Create(ctx, payload)
	} else {
		_, err = c.finalScoresStorage.Update(ctx, storage.RecordID(req.ID), payload)
	}
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to save final score for team %d: %v", payload.TeamID, err)
		view := c.view(ctx, &req, "")
		view.Error = "Lưu thất bại: " + err.Error()
		status := http.StatusBadGateway
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		transport.Render(g, status, adminScoresPage, view)
		return
	}

	logging.Log.Infof("ADMIN: saved final score of team %d judge %d", payload.TeamID, payload.JudgeID)
	view := c.view(ctx, nil, "")
	view.Message = "Đã lưu"
	transport.Render(g, http.StatusOK, adminScoresPage, view)
}

// @Security AdminToken
// deleteFinalScore godoc
// @Summary Delete a final-round score record
// @Tags admin
// @Produce html,json
// @Param id path string true "Record id"
// @Success 200 {object} models.AdminScoresView
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.AdminScoresView
// @Failure 502 {object} models.AdminScoresView
// @Router /admin/teams-score-final/{id} [delete]
// @Router /admin/teams-score-final/{id}/delete [post]
func (c *AdminController) deleteFinalScore(g *gin.Context) {
	id := strings.TrimSpace(g.Param("id"))
	ctx := g.Request.Context()

	if err := c.finalScoresStorage.Delete(ctx, storage.RecordID(id)); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete final score %s: %v", id, err)
		status := http.StatusBadGateway
		if errors.Is(err, storage.ErrNotFound) {
			status = http.StatusNotFound
		}
		view := c.view(ctx, nil, "")
		view.Error = "Xóa thất bại: " + err.Error()
		transport.Render(g, status, adminScoresPage, view)
		return
	}

	logging.Log.Infof("ADMIN: deleted final score %s", id)
	view := c.view(ctx, nil, "")
	view.Message = "Đã xóa"
	transport.Render(g, http.StatusOK, adminScoresPage, view)
}
