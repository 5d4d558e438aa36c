package storage

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Dinhh-Chan/aic-judges/logging"
)

type TeamStorage interface {
	GetAll(ctx context.Context, limit, offset int) ([]*Team, error)
}

type RestTeamStorage struct {
	Client *Client
}

func (s *RestTeamStorage) GetAll(ctx context.Context, limit, offset int) ([]*Team, error) {
	req := s.Client.request(ctx).SetQueryParams(map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	env, err := s.Client.execute(req, http.MethodGet, "/teams")
	if err != nil {
		return nil, err
	}

	var teams []*Team
	if err := decodeList(env, &teams); err != nil {
		logging.Log.Errorf("TEAM: invalid team list: %v", err)
		return nil, err
	}
	return teams, nil
}
