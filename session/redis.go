package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "aic:session:"

// RedisStore keeps one JSON value per session. A zero TTL keeps sessions until logout.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.Client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		logging.Log.Errorf("SESSION: redis get %s failed: %v", id, err)
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		logging.Log.Errorf("SESSION: corrupted session data for %s: %v", id, err)
		return nil, err
	}
	sess.ensureLedger()
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, redisKeyPrefix+sess.ID, data, s.TTL).Err(); err != nil {
		logging.Log.Errorf("SESSION: redis set %s failed: %v", sess.ID, err)
		return err
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		logging.Log.Errorf("SESSION: redis del %s failed: %v", id, err)
		return err
	}
	return nil
}
