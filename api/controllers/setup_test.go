package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/Dinhh-Chan/aic-judges/api/controllers/testing"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "secret"

type testServer struct {
	router   *gin.Engine
	teams    *fakeTeamStorage
	judges   *fakeJudgeStorage
	scores   *fakeScoreStorage
	finals   *fakeFinalScoreStorage
	sessions *session.Manager
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	logging.Log = logrus.New()

	s := &testServer{
		teams: &fakeTeamStorage{teams: sampleTeams()},
		judges: &fakeJudgeStorage{
			judges:    sampleJudges(),
			passwords: map[string]string{"gk7": "pw7", "gk8": "pw8"},
		},
		scores: &fakeScoreStorage{},
		finals: &fakeFinalScoreStorage{},
		sessions: &session.Manager{
			Store:      session.NewMemoryStore(),
			Codec:      session.NewCodec("test-secret"),
			CookieName: "aic_session",
		},
	}

	r := transport.NewRouter(gin.TestMode, nil)
	NewLoginController(s.judges, s.sessions).RegisterRoutes(r)
	NewJudgingController(s.teams, s.scores, s.sessions, "https://static/", 100).RegisterRoutes(r)
	NewResultsController(s.scores, s.teams, "https://static/", 100).RegisterRoutes(r)
	NewAdminController(s.finals, s.teams, s.judges, testAdminToken, false, 100).RegisterRoutes(r)
	s.router = r
	return s
}

// login returns the Cookie header of a fresh session for username.
func (s *testServer) login(t *testing.T, username, password string) map[string]string {
	t.Helper()
	res := testutils.PerformRequest(s.router, http.MethodPost, "/judges/login",
		map[string]string{"username": username, "password": password}, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body.String())
	return map[string]string{"Cookie": testutils.CookieHeader(res)}
}

func decode[T any](t *testing.T, body []byte) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return &v
}
