package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dinhh-Chan/aic-judges/api/models"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/session"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const judgingPage = "judges.html"

var memberFields = [storage.MemberSlotCount]string{"leader", "member1", "member2", "member3", "member4"}

type JudgingController struct {
	teamsStorage  storage.TeamStorage
	scoresStorage storage.ScoreStorage
	sessions      *session.Manager
	staticBaseURL string
	teamLimit     int
}

func NewJudgingController(teamStorage storage.TeamStorage, scoreStorage storage.ScoreStorage, sessions *session.Manager, staticBaseURL string, teamLimit int) *JudgingController {
	return &JudgingController{
		teamsStorage:  teamStorage,
		scoresStorage: scoreStorage,
		sessions:      sessions,
		staticBaseURL: staticBaseURL,
		teamLimit:     teamLimit,
	}
}

func (c *JudgingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/judges")
	group.Use(transport.JudgeSessionMiddleware(c.sessions))

	group.GET("", c.judgingPage(models.RoundPreliminary))
	group.POST("/scores/:teamId", c.saveScore(models.RoundPreliminary))
	group.POST("/scores/:teamId/record-id", c.supplyRecordID(models.RoundPreliminary))

	group.GET("/final", c.judgingPage(models.RoundFinal))
	group.POST("/final/scores/:teamId", c.saveScore(models.RoundFinal))
	group.POST("/final/scores/:teamId/record-id", c.supplyRecordID(models.RoundFinal))
}

// roundData is what the judging page needs from the backend for one request.
type roundData struct {
	teams   []scoring.TeamProfile
	podium  map[int]*scoring.PodiumEntry
	records []*storage.ScoreRecord
	err     error
}

func (d *roundData) record(teamID int) *storage.ScoreRecord {
	for _, r := range d.records {
		if r != nil && r.TeamID == teamID {
			return r
		}
	}
	return nil
}

func (d *roundData) team(teamID int) (scoring.TeamProfile, bool) {
	for _, t := range d.teams {
		if t.ID == teamID {
			return t, true
		}
	}
	return scoring.TeamProfile{}, false
}

// load fetches the teams of the round and the judge's records concurrently. A failed team fetch
// is reported, a failed record fetch only loses prefill and the summary.
func (c *JudgingController) load(ctx context.Context, round models.Round, judgeID int) *roundData {
	data := &roundData{}
	var g errgroup.Group

	g.Go(func() error {
		if round == models.RoundFinal {
			entries, err := scoring.LoadPodium(ctx, c.scoresStorage, c.teamsStorage, c.teamLimit, c.staticBaseURL)
			if err != nil {
				data.err = err
				return nil
			}
			data.podium = make(map[int]*scoring.PodiumEntry, len(entries))
			for i := range entries {
				data.teams = append(data.teams, entries[i].Team)
				data.podium[entries[i].Team.ID] = &entries[i]
			}
			return nil
		}

		teams, err := c.teamsStorage.GetAll(ctx, c.teamLimit, 0)
		if err != nil {
			logging.Log.Errorf("SCORES: could not load teams: %v", err)
			data.err = err
			return nil
		}
		data.teams = scoring.NewTeamProfiles(teams, c.staticBaseURL)
		return nil
	})
	g.Go(func() error {
		records, err := c.scoresStorage.GetByJudge(ctx, judgeID)
		if err != nil {
			logging.Log.Warnf("SCORES: could not load records of judge %d: %v", judgeID, err)
			return nil
		}
		data.records = records
		return nil
	})
	_ = g.Wait()

	return data
}

// view assembles the page. form is the submitted form, nil to prefill from the judge's record.
func (c *JudgingController) view(sess *session.Session, round models.Round, data *roundData, teamID int, form *scoring.ScoreForm) *models.JudgingView {
	view := &models.JudgingView{
		Round:          round,
		Judge:          sess.Judge,
		Criteria:       scoring.TeamCriteria,
		MemberCriteria: scoring.MemberCriteria,
		Teams:          data.teams,
		Summary:        summarize(data),
	}
	if data.err != nil {
		view.Error = "Không thể tải danh sách đội thi"
	}

	team, ok := data.team(teamID)
	if !ok {
		switch {
		case form != nil:
			team = scoring.TeamProfile{ID: teamID, Name: fmt.Sprintf("Team %d", teamID)}
		case len(data.teams) > 0:
			team = data.teams[0]
		default:
			return view
		}
	}

	if form == nil {
		form = scoring.NewScoreForm()
		form.Prefill(data.record(team.ID))
	}
	view.Selected = selectedTeam(team, form, sess.Ledger.State(team.ID))
	if entry, ok := data.podium[team.ID]; ok {
		view.Selected.Podium = entry
	}
	return view
}

func selectedTeam(team scoring.TeamProfile, form *scoring.ScoreForm, state scoring.RecordState) *models.SelectedTeam {
	selected := &models.SelectedTeam{
		Team:    team,
		Form:    form,
		Total:   form.Total(),
		State:   state,
		Method:  state.Method(),
		NeedsID: state.Phase == scoring.PhaseAwaitingID,
	}
	for slot, person := range team.People() {
		if slot >= storage.MemberSlotCount {
			break
		}
		role := "Thành viên"
		if slot == 0 {
			role = "Trưởng nhóm"
		}
		selected.People = append(selected.People, models.MemberSlotView{
			Slot:   slot,
			Field:  memberFields[slot],
			Role:   role,
			Person: person,
			Scores: form.Members[slot],
			Total:  form.MemberTotal(slot),
		})
	}
	return selected
}

func summarize(data *roundData) []models.ScoredTeam {
	summary := make([]models.ScoredTeam, 0, len(data.records))
	for _, r := range data.records {
		if r == nil {
			continue
		}
		name := fmt.Sprintf("Team %d", r.TeamID)
		if t, ok := data.team(r.TeamID); ok && t.Name != "" {
			name = t.Name
		}
		total, members := scoring.RecordTotals(r)
		summary = append(summary, models.ScoredTeam{
			TeamID:       r.TeamID,
			TeamName:     name,
			Record:       r,
			Total:        total,
			MemberTotals: members,
		})
	}
	return summary
}

// judgingPage godoc
// @Summary Judging page
// @Description Lists the teams of the round, the selected team's form prefilled from the judge's record and the judge's scored teams
// @Tags judges
// @Produce html,json
// @Param team query int false "Selected team id, defaults to the first team"
// @Success 200 {object} models.JudgingView
// @Success 303 "No session, redirect to the login page"
// @Router /judges [get]
// @Router /judges/final [get]
func (c *JudgingController) judgingPage(round models.Round) gin.HandlerFunc {
	return func(g *gin.Context) {
		sess, _ := session.FromContext(g)
		teamID, _ := strconv.Atoi(g.Query("team"))

		data := c.load(g.Request.Context(), round, sess.Judge.ID)
		if len(data.records) > 0 {
			sess.Ledger.Seed(data.records)
			if err := c.sessions.Save(g.Request.Context(), sess); err != nil {
				logging.Log.Errorf("SESSION: could not save ledger of judge %d: %v", sess.Judge.ID, err)
			}
		}

		transport.Render(g, http.StatusOK, judgingPage, c.view(sess, round, data, teamID, nil))
	}
}

// saveScore godoc
// @Summary Save a score
// @Description Creates the judge's score for the team, or updates it once the record id is known
// @Tags judges
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param teamId path int true "Team id"
// @Param score body models.ScoreRequest true "Score values, clamped to the rubric maxima"
// @Success 200 {object} models.JudgingView
// @Failure 400 {object} models.ErrorResponse "Invalid team id or body"
// @Failure 409 {object} models.JudgingView "A record exists and its id is required"
// @Failure 502 {object} models.JudgingView "Backend failure"
// @Router /judges/scores/{teamId} [post]
// @Router /judges/final/scores/{teamId} [post]
func (c *JudgingController) saveScore(round models.Round) gin.HandlerFunc {
	return func(g *gin.Context) {
		teamID, ok := teamParam(g)
		if !ok {
			return
		}

		var req models.ScoreRequest
		if err := g.ShouldBind(&req); err != nil {
			logging.Log.Warnf("SCORES: invalid score body: %v", err)
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
			return
		}

		sess, _ := session.FromContext(g)
		c.save(g, round, sess, teamID, sess.Ledger.State(teamID), req.ToForm())
	}
}

// supplyRecordID godoc
// @Summary Supply an existing record id
// @Description Uses the operator supplied id of the existing record and saves the scores as an update
// @Tags judges
// @Accept x-www-form-urlencoded,json
// @Produce html,json
// @Param teamId path int true "Team id"
// @Param score body models.RecordIDRequest true "Record id and score values"
// @Success 200 {object} models.JudgingView
// @Failure 400 {object} models.JudgingView "Missing record id"
// @Failure 502 {object} models.JudgingView "Backend failure"
// @Router /judges/scores/{teamId}/record-id [post]
// @Router /judges/final/scores/{teamId}/record-id [post]
func (c *JudgingController) supplyRecordID(round models.Round) gin.HandlerFunc {
	return func(g *gin.Context) {
		teamID, ok := teamParam(g)
		if !ok {
			return
		}

		var req models.RecordIDRequest
		if err := g.ShouldBind(&req); err != nil {
			logging.Log.Warnf("SCORES: invalid record id body: %v", err)
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
			return
		}

		sess, _ := session.FromContext(g)
		form := req.ToForm()
		state, err := scoring.SupplyID(req.RecordID)
		if err != nil {
			data := c.load(g.Request.Context(), round, sess.Judge.ID)
			view := c.view(sess, round, data, teamID, form)
			view.Error = "Vui lòng nhập mã bản ghi (Score ID)"
			transport.Render(g, http.StatusBadRequest, judgingPage, view)
			return
		}

		logging.Log.Infof("SCORES: judge %d supplied record %s for team %d", sess.Judge.ID, state.RecordID, teamID)
		c.save(g, round, sess, teamID, state, form)
	}
}

// save runs the reconciler from state, stores the next state in the session ledger and renders
// the page with the submitted values.
func (c *JudgingController) save(g *gin.Context, round models.Round, sess *session.Session, teamID int, state scoring.RecordState, form *scoring.ScoreForm) {
	ctx := g.Request.Context()
	reconciler := scoring.NewReconciler(c.scoresStorage, c.ledgerFinder(sess.ID))

	next, _, saveErr := reconciler.Save(ctx, state, form.Payload(teamID, sess.Judge.ID))
	sess.Ledger[teamID] = next
	if err := c.sessions.Save(ctx, sess); err != nil {
		logging.Log.Errorf("SESSION: could not save ledger of judge %d: %v", sess.Judge.ID, err)
	}

	data := c.load(ctx, round, sess.Judge.ID)
	view := c.view(sess, round, data, teamID, form)

	status := http.StatusOK
	switch {
	case saveErr == nil:
		view.Message = "Đã lưu điểm"
	case errors.Is(saveErr, scoring.ErrRecordIDRequired):
		status = http.StatusConflict
		view.Error = "Đã có điểm cho đội này nhưng không tìm được mã bản ghi. Vui lòng nhập Score ID."
	default:
		status = http.StatusBadGateway
		view.Error = "Lưu điểm thất bại: " + saveErr.Error()
	}
	transport.Render(g, status, judgingPage, view)
}

// ledgerFinder looks the record up in the stored copy of the session, which other tabs of the
// same judge may have updated since this request loaded it.
func (c *JudgingController) ledgerFinder(sessionID string) scoring.RecordFinder {
	return scoring.FinderFunc(func(ctx context.Context, teamID, _ int) (storage.RecordID, bool, error) {
		stored, err := c.sessions.Store.Get(ctx, sessionID)
		if err != nil {
			return "", false, err
		}
		state := stored.Ledger.State(teamID)
		if state.Phase != scoring.PhaseSaved {
			return "", false, nil
		}
		return state.RecordID, true, nil
	})
}

func teamParam(g *gin.Context) (int, bool) {
	teamID, err := strconv.Atoi(g.Param("teamId"))
	if err != nil || teamID <= 0 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
		return 0, false
	}
	return teamID, true
}
