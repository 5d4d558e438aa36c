package storage

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dinhh-Chan/aic-judges/logging"
)

// FinalScoreStorage manages the final-round score records edited by administrators.
type FinalScoreStorage interface {
	GetAll(ctx context.Context) ([]*FinalScoreRecord, error)
	Create(ctx context.Context, payload *FinalScorePayload) (*FinalScoreRecord, error)
	Update(ctx context.Context, id RecordID, payload *FinalScorePayload) (*FinalScoreRecord, error)
	Delete(ctx context.Context, id RecordID) error
}

type RestFinalScoreStorage struct {
	Client *Client
}

func (s *RestFinalScoreStorage) GetAll(ctx context.Context) ([]*FinalScoreRecord, error) {
	env, err := s.Client.execute(s.Client.request(ctx), http.MethodGet, "/teams-score-final")
	if err != nil {
		return nil, err
	}

	var records []*FinalScoreRecord
	if err := decodeList(env, &records); err != nil {
		logging.Log.Errorf("FINAL: invalid final score records: %v", err)
		return nil, err
	}
	return records, nil
}

func (s *RestFinalScoreStorage) Create(ctx context.Context, payload *FinalScorePayload) (*FinalScoreRecord, error) {
	req := s.Client.request(ctx).SetBody(payload)
	env, err := s.Client.execute(req, http.MethodPost, "/teams-score-final")
	if err != nil {
		if isDuplicate(err) {
			return nil, errors.Join(ErrDuplicateScore, err)
		}
		return nil, err
	}

	var record FinalScoreRecord
	if err := decodeObject(env, &record); err != nil {
		logging.Log.Errorf("FINAL: invalid create payload: %v", err)
		return nil, err
	}
	return &record, nil
}

func (s *RestFinalScoreStorage) Update(ctx context.Context, id RecordID, payload *FinalScorePayload) (*FinalScoreRecord, error) {
	req := s.Client.request(ctx).SetPathParam("id", id.String()).SetBody(payload)
	env, err := s.Client.execute(req, http.MethodPut, "/teams-score-final/{id}")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, errors.Join(ErrNotFound, err)
		}
		return nil, err
	}

	var record FinalScoreRecord
	if err := decodeObject(env, &record); err != nil {
		logging.Log.Errorf("FINAL: invalid update payload for %s: %v", id, err)
		return nil, err
	}
	if record.ID == "" {
		record.ID = id
	}
	return &record, nil
}

func (s *RestFinalScoreStorage) Delete(ctx context.Context, id RecordID) error {
	req := s.Client.request(ctx).SetPathParam("id", id.String())
	_, err := s.Client.execute(req, http.MethodDelete, "/teams-score-final/{id}")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return errors.Join(ErrNotFound, err)
		}
		return err
	}
	logging.Log.Infof("FINAL: deleted final score record %s", id)
	return nil
}
