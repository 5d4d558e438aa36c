package storage

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/logging"
)

type ScoreStorage interface {
	GetByJudge(ctx context.Context, judgeID int) ([]*ScoreRecord, error)
	Create(ctx context.Context, payload *ScorePayload) (*ScoreRecord, error)
	Update(ctx context.Context, id RecordID, payload *ScorePayload) (*ScoreRecord, error)
	FinalScores(ctx context.Context) ([]*FinalRankingRow, error)
}

type RestScoreStorage struct {
	Client *Client
}

func (s *RestScoreStorage) GetByJudge(ctx context.Context, judgeID int) ([]*ScoreRecord, error) {
	req := s.Client.request(ctx).SetPathParam("judgeId", strconv.Itoa(judgeID))
	env, err := s.Client.execute(req, http.MethodGet, "/scores/judge/{judgeId}")
	if err != nil {
		return nil, err
	}

	var records []*ScoreRecord
	if err := decodeList(env, &records); err != nil {
		logging.Log.Errorf("SCORES: invalid score list for judge %d: %v", judgeID, err)
		return nil, err
	}
	return records, nil
}

// Create posts a new score. A duplicate (team, judge) pair is reported as ErrDuplicateScore.
func (s *RestScoreStorage) Create(ctx context.Context, payload *ScorePayload) (*ScoreRecord, error) {
	req := s.Client.request(ctx).SetBody(payload)
	env, err := s.Client.execute(req, http.MethodPost, "/scores")
	if err != nil {
		if isDuplicate(err) {
			logging.Log.Warnf("SCORES: score for team %d and judge %d already exists", payload.TeamID, payload.JudgeID)
			return nil, errors.Join(ErrDuplicateScore, err)
		}
		return nil, err
	}

	var record ScoreRecord
	if err := decodeObject(env, &record); err != nil {
		if !env.Success && strings.Contains(strings.ToLower(env.detail()), "already exists") {
			return nil, errors.Join(ErrDuplicateScore, err)
		}
		logging.Log.Errorf("SCORES: invalid create payload: %v", err)
		return nil, err
	}
	return &record, nil
}

func (s *RestScoreStorage) Update(ctx context.Context, id RecordID, payload *ScorePayload) (*ScoreRecord, error) {
	req := s.Client.request(ctx).SetPathParam("id", id.String()).SetBody(payload)
	env, err := s.Client.execute(req, http.MethodPut, "/scores/{id}")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, err
	}

	var record ScoreRecord
	if err := decodeObject(env, &record); err != nil {
		logging.Log.Errorf("SCORES: invalid update payload for %s: %v", id, err)
		return nil, err
	}
	if record.ID == "" {
		record.ID = id
	}
	return &record, nil
}

func (s *RestScoreStorage) FinalScores(ctx context.Context) ([]*FinalRankingRow, error) {
	env, err := s.Client.execute(s.Client.request(ctx), http.MethodGet, "/scores/final-scores")
	if err != nil {
		return nil, err
	}

	var rows []*FinalRankingRow
	if err := decodeList(env, &rows); err != nil {
		logging.Log.Errorf("SCORES: invalid final score list: %v", err)
		return nil, err
	}
	return rows, nil
}

// isDuplicate recognises the backend's unique (team, judge) rejection. 409 is the structured
// signal; older deployments only say so in the detail text.
func isDuplicate(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode == http.StatusConflict {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "already exists")
}
