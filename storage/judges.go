package storage

import (
	"context"
	"errors"
	"net/http"

	"github.com/Dinhh-Chan/aic-judges/logging"
)

type JudgeStorage interface {
	GetAll(ctx context.Context) ([]*Judge, error)
	Authenticate(ctx context.Context, username, password string) (*Judge, error)
}

// RestJudgeStorage reads judges from Client. Authentication may live on a different host, AuthClient.
type RestJudgeStorage struct {
	Client     *Client
	AuthClient *Client
}

func (s *RestJudgeStorage) GetAll(ctx context.Context) ([]*Judge, error) {
	env, err := s.Client.execute(s.Client.request(ctx), http.MethodGet, "/judges/judges")
	if err != nil {
		return nil, err
	}

	var judges []*Judge
	if err := decodeList(env, &judges); err != nil {
		logging.Log.Errorf("JUDGE: invalid judge list: %v", err)
		return nil, err
	}
	return judges, nil
}

// Authenticate checks credentials against the backend. Credentials travel as query parameters.
func (s *RestJudgeStorage) Authenticate(ctx context.Context, username, password string) (*Judge, error) {
	client := s.AuthClient
	if client == nil {
		client = s.Client
	}

	req := client.request(ctx).
		SetHeader("Cache-Control", "no-store").
		SetQueryParams(map[string]string{
			"username": username,
			"password": password,
		})
	env, err := client.execute(req, http.MethodPost, "/judges/judges/authenticate")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, errors.Join(ErrUnauthorized, apiErr)
		}
		return nil, err
	}

	if !env.Success {
		logging.Log.Warnf("JUDGE: authentication refused for '%s'", username)
		if msg := env.detail(); msg != "" {
			return nil, errors.Join(ErrUnauthorized, errors.New(msg))
		}
		return nil, ErrUnauthorized
	}

	var judge Judge
	if err := decodeObject(env, &judge); err != nil {
		logging.Log.Errorf("JUDGE: invalid authentication payload: %v", err)
		return nil, err
	}
	if judge.ID == 0 {
		logging.Log.Errorf("JUDGE: authentication of '%s' returned no judge", username)
		return nil, ErrInvalidPayload
	}
	return &judge, nil
}
