package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/gin-gonic/gin"
)

const contextKey = "judge_session"

// Manager ties the session cookie to the session store.
type Manager struct {
	Store      Store
	Codec      *Codec
	CookieName string
	Secure     bool
}

// Load reads the session of the request. A missing, forged or dangling cookie yields nil.
func (m *Manager) Load(g *gin.Context) *Session {
	raw, err := g.Cookie(m.CookieName)
	if err != nil || raw == "" {
		return nil
	}

	claims, err := m.Codec.Parse(raw)
	if err != nil {
		logging.Log.Warnf("SESSION: ignoring unreadable session cookie: %v", err)
		return nil
	}

	sess, err := m.Store.Get(g.Request.Context(), claims.SessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			logging.Log.Errorf("SESSION: failed to load session %s: %v", claims.SessionID, err)
		}
		return nil
	}
	if sess.Judge.ID != claims.JudgeID {
		logging.Log.Warnf("SESSION: session %s does not belong to judge %d", sess.ID, claims.JudgeID)
		return nil
	}
	return sess
}

// Start creates a session for judge and sets the cookie.
func (m *Manager) Start(g *gin.Context, judge storage.Judge) (*Session, error) {
	sess, err := New(judge)
	if err != nil {
		return nil, err
	}
	if err := m.Store.Save(g.Request.Context(), sess); err != nil {
		return nil, err
	}
	token, err := m.Codec.Issue(sess)
	if err != nil {
		return nil, err
	}

	g.SetSameSite(http.SameSiteLaxMode)
	g.SetCookie(m.CookieName, token, 0, "/", "", m.Secure, true)
	logging.Log.Infof("SESSION: judge %d (%s) logged in", judge.ID, judge.Username)
	return sess, nil
}

func (m *Manager) Save(ctx context.Context, sess *Session) error {
	return m.Store.Save(ctx, sess)
}

// End deletes the session, if any, and expires the cookie.
func (m *Manager) End(g *gin.Context) {
	if sess := m.Load(g); sess != nil {
		if err := m.Store.Delete(g.Request.Context(), sess.ID); err != nil {
			logging.Log.Errorf("SESSION: failed to delete session %s: %v", sess.ID, err)
		}
		logging.Log.Infof("SESSION: judge %d logged out", sess.Judge.ID)
	}
	g.SetSameSite(http.SameSiteLaxMode)
	g.SetCookie(m.CookieName, "", -1, "/", "", m.Secure, true)
}

func Attach(g *gin.Context, sess *Session) {
	g.Set(contextKey, sess)
}

func FromContext(g *gin.Context) (*Session, bool) {
	v, ok := g.Get(contextKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*Session)
	return sess, ok && sess != nil
}
