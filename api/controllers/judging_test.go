package controllers

import (
	"errors"
	"net/http"
	"testing"

	testutils "github.com/Dinhh-Chan/aic-judges/api/controllers/testing"
	"github.com/Dinhh-Chan/aic-judges/api/models"
	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleScores() map[string]any {
	return map[string]any{
		"creativity":       30,
		"feasibility":      20,
		"ai_effectiveness": 20,
		"presentation":     "15",
		"social_impact":    15,
		"skills_leader":    60,
		"comment":          "tốt",
	}
}

func TestJudgingPage(t *testing.T) {
	t.Run("Unhappy path - no session redirects to login", func(t *testing.T) {
		s := setupTestServer(t)
		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges", nil, nil)
		assert.Equal(t, http.StatusSeeOther, res.Code)
		assert.Equal(t, "/judges/login", res.Header().Get("Location"))
	})

	t.Run("Unhappy path - forged cookie redirects to login", func(t *testing.T) {
		s := setupTestServer(t)
		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges", nil, map[string]string{"Cookie": "aic_session=forged"})
		assert.Equal(t, http.StatusSeeOther, res.Code)
	})

	t.Run("Happy path - lists teams and selects the first", func(t *testing.T) {
		s := setupTestServer(t)
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges", nil, cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		assert.Equal(t, models.RoundPreliminary, view.Round)
		assert.Equal(t, 7, view.Judge.ID)
		assert.Len(t, view.Teams, 4)
		assert.Len(t, view.Criteria, 5)
		require.NotNil(t, view.Selected)
		assert.Equal(t, 1, view.Selected.Team.ID)
		assert.Equal(t, "POST", view.Selected.Method)
		require.Len(t, view.Selected.People, 2)
		assert.Equal(t, "leader", view.Selected.People[0].Field)
		assert.Equal(t, "member1", view.Selected.People[1].Field)
		assert.Empty(t, view.Summary)
	})

	t.Run("Happy path - prefills from the judge's record and seeds the ledger", func(t *testing.T) {
		s := setupTestServer(t)
		twenty := 20.0
		s.scores.records = []*storage.ScoreRecord{
			{ID: "55", TeamID: 2, JudgeID: 7, Creativity: &twenty, Comment: "cũ"},
			{ID: "56", TeamID: 3, JudgeID: 8, Creativity: &twenty},
		}
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges?team=2", nil, cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		require.NotNil(t, view.Selected)
		assert.Equal(t, 2, view.Selected.Team.ID)
		assert.Equal(t, 20, *view.Selected.Form.Value(scoring.Creativity))
		assert.Equal(t, "cũ", view.Selected.Form.Comment)
		assert.Equal(t, scoring.Saved("55"), view.Selected.State)
		assert.Equal(t, "PUT", view.Selected.Method)
		require.Len(t, view.Summary, 1)
		assert.Equal(t, "Beta", view.Summary[0].TeamName)
		assert.Equal(t, 20, view.Summary[0].Total)
	})

	t.Run("Unhappy path - teams unavailable", func(t *testing.T) {
		s := setupTestServer(t)
		s.teams.err = errors.New("down")
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges", nil, cookie)
		require.Equal(t, http.StatusOK, res.Code)

		view := decode[models.JudgingView](t, res.Body.Bytes())
		assert.NotEmpty(t, view.Error)
		assert.Nil(t, view.Selected)
	})
}

func TestSaveScore(t *testing.T) {
	t.Run("Happy path - first save creates, second updates", func(t *testing.T) {
		s := setupTestServer(t)
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/1", exampleScores(), cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		require.NotNil(t, view.Selected)
		assert.Equal(t, 95, view.Selected.Total)
		assert.Equal(t, 25, *view.Selected.Form.Value(scoring.Creativity))
		assert.Equal(t, 50, view.Selected.People[0].Total)
		assert.Equal(t, scoring.PhaseSaved, view.Selected.State.Phase)
		assert.NotEmpty(t, view.Message)

		require.Len(t, s.scores.calls, 1)
		first := s.scores.calls[0]
		assert.Equal(t, "POST", first.method)
		assert.Equal(t, 7, first.payload.JudgeID)
		assert.Equal(t, 25, first.payload.Creativity)
		assert.Equal(t, 95, first.payload.TotalScore)
		skills, inspiration := first.payload.MemberScores.Slot(0)
		require.NotNil(t, skills)
		assert.Equal(t, 50.0, *skills)
		assert.Nil(t, inspiration)

		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/1", exampleScores(), cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		require.Len(t, s.scores.calls, 2)
		assert.Equal(t, "PUT", s.scores.calls[1].method)
		assert.Equal(t, view.Selected.State.RecordID, s.scores.calls[1].id)
	})

	t.Run("Happy path - record seeded by the page load is updated", func(t *testing.T) {
		s := setupTestServer(t)
		s.scores.records = []*storage.ScoreRecord{{ID: "77", TeamID: 3, JudgeID: 7}}
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges?team=3", nil, cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/3", exampleScores(), cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		require.Len(t, s.scores.calls, 1)
		assert.Equal(t, "PUT", s.scores.calls[0].method)
		assert.Equal(t, storage.RecordID("77"), s.scores.calls[0].id)
	})

	t.Run("Unhappy path - duplicate unknown to the session is not looked up", func(t *testing.T) {
		s := setupTestServer(t)
		s.scores.records = []*storage.ScoreRecord{{ID: "77", TeamID: 3, JudgeID: 7}}
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/3", exampleScores(), cookie)
		require.Equal(t, http.StatusConflict, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		require.NotNil(t, view.Selected)
		assert.True(t, view.Selected.NeedsID)
		assert.Equal(t, scoring.PhaseAwaitingID, view.Selected.State.Phase)
		require.Len(t, s.scores.calls, 1)
		assert.Equal(t, "POST", s.scores.calls[0].method)
	})

	t.Run("Unhappy path - duplicate without id waits for the operator", func(t *testing.T) {
		s := setupTestServer(t)
		s.scores.records = []*storage.ScoreRecord{{ID: "88", TeamID: 4, JudgeID: 7}}
		s.scores.hideRecords = true
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/4", exampleScores(), cookie)
		require.Equal(t, http.StatusConflict, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		require.NotNil(t, view.Selected)
		assert.True(t, view.Selected.NeedsID)
		assert.Equal(t, 95, view.Selected.Total)
		assert.NotEmpty(t, view.Error)
		require.Len(t, s.scores.calls, 1)

		// saving again does not reach the backend
		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/4", exampleScores(), cookie)
		assert.Equal(t, http.StatusConflict, res.Code)
		assert.Len(t, s.scores.calls, 1)

		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/4/record-id",
			map[string]any{"record_id": "", "creativity": 10}, cookie)
		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Len(t, s.scores.calls, 1)

		body := exampleScores()
		body["record_id"] = "88"
		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/4/record-id", body, cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		require.Len(t, s.scores.calls, 2)
		assert.Equal(t, "PUT", s.scores.calls[1].method)
		assert.Equal(t, storage.RecordID("88"), s.scores.calls[1].id)

		view = decode[models.JudgingView](t, res.Body.Bytes())
		assert.Equal(t, scoring.Saved("88"), view.Selected.State)
	})

	t.Run("Unhappy path - backend failure keeps the form", func(t *testing.T) {
		s := setupTestServer(t)
		s.scores.failWrites = &storage.APIError{StatusCode: 500, Message: "db down"}
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/2", exampleScores(), cookie)
		require.Equal(t, http.StatusBadGateway, res.Code)

		view := decode[models.JudgingView](t, res.Body.Bytes())
		assert.Equal(t, 95, view.Selected.Total)
		assert.Equal(t, scoring.PhaseNew, view.Selected.State.Phase)
		assert.Contains(t, view.Error, "db down")
	})

	t.Run("Unhappy path - invalid team id", func(t *testing.T) {
		s := setupTestServer(t)
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/abc", exampleScores(), cookie)
		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Empty(t, s.scores.calls)
	})

	t.Run("Unhappy path - no session", func(t *testing.T) {
		s := setupTestServer(t)
		res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/scores/1", exampleScores(), nil)
		assert.Equal(t, http.StatusSeeOther, res.Code)
		assert.Empty(t, s.scores.calls)
	})
}

func TestFinalRound(t *testing.T) {
	t.Run("Happy path - final round shows the podium teams", func(t *testing.T) {
		s := setupTestServer(t)
		f := func(v float64) *float64 { return &v }
		s.scores.ranking = []*storage.FinalRankingRow{
			{TeamID: 1, FinalScore: f(70)},
			{TeamID: 3, FinalScore: f(90)},
			{TeamID: 2, FinalScore: f(80)},
			{TeamID: 4, FinalScore: f(60)},
		}
		cookie := s.login(t, "gk7", "pw7")

		res := testutils.PerformRequest(s.router, http.MethodGet, "/judges/final", nil, cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())

		view := decode[models.JudgingView](t, res.Body.Bytes())
		assert.Equal(t, models.RoundFinal, view.Round)
		require.Len(t, view.Teams, 3)
		assert.Equal(t, []int{3, 2, 1}, []int{view.Teams[0].ID, view.Teams[1].ID, view.Teams[2].ID})
		require.NotNil(t, view.Selected)
		require.NotNil(t, view.Selected.Podium)
		assert.Equal(t, 1, view.Selected.Podium.Rank)

		res = testutils.PerformRequest(s.router, http.MethodPost, "/judges/final/scores/3", exampleScores(), cookie)
		require.Equal(t, http.StatusOK, res.Code, res.Body.String())
		require.Len(t, s.scores.calls, 1)
		assert.Equal(t, 3, s.scores.calls[0].payload.TeamID)
	})
}
