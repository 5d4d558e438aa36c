package session

import (
	"context"
	"errors"
	"time"

	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrSessionNotFound = errors.New("session not found")

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
const idLength = 32

// Session is the authenticated judge together with the save state of their scores.
type Session struct {
	ID        string         `json:"id"`
	Judge     storage.Judge  `json:"judge"`
	Ledger    scoring.Ledger `json:"ledger"`
	CreatedAt time.Time      `json:"createdAt"`
}

func New(judge storage.Judge) (*Session, error) {
	id, err := gonanoid.Generate(idAlphabet, idLength)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		Judge:     judge,
		Ledger:    make(scoring.Ledger),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *Session) ensureLedger() {
	if s.Ledger == nil {
		s.Ledger = make(scoring.Ledger)
	}
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
