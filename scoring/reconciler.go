package scoring

import (
	"context"
	"errors"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/storage"
)

// Phase is the save state of one (team, judge) score.
type Phase string

const (
	// PhaseNew means no record id is known, the next save creates.
	PhaseNew Phase = "new"
	// PhaseSaved means the record id is known, saves update it.
	PhaseSaved Phase = "saved"
	// PhaseAwaitingID means the backend already holds a record whose id is not known locally.
	PhaseAwaitingID Phase = "awaiting_id"
)

type RecordState struct {
	Phase    Phase            `json:"phase"`
	RecordID storage.RecordID `json:"recordId,omitempty"`
}

func Saved(id storage.RecordID) RecordState {
	return RecordState{Phase: PhaseSaved, RecordID: id}
}

// Method is the HTTP verb the next save will use, empty while an id is awaited.
func (s RecordState) Method() string {
	switch s.Phase {
	case PhaseSaved:
		return "PUT"
	case PhaseAwaitingID:
		return ""
	}
	return "POST"
}

var ErrRecordIDRequired = errors.New("score for this team and judge already exists, the existing record id is required")
var ErrEmptyRecordID = errors.New("record id is empty")

// ScoreWriter creates and updates score records. storage.ScoreStorage satisfies it.
type ScoreWriter interface {
	Create(ctx context.Context, payload *storage.ScorePayload) (*storage.ScoreRecord, error)
	Update(ctx context.Context, id storage.RecordID, payload *storage.ScorePayload) (*storage.ScoreRecord, error)
}

// RecordFinder looks up a locally known record id for a (team, judge) pair. Finders never ask the
// backend: a record the client has no id for is resolved by the operator.
type RecordFinder interface {
	FindRecordID(ctx context.Context, teamID, judgeID int) (storage.RecordID, bool, error)
}

// Reconciler drives the create/update state machine of score saves.
type Reconciler struct {
	writer  ScoreWriter
	finders []RecordFinder
}

func NewReconciler(writer ScoreWriter, finders ...RecordFinder) *Reconciler {
	return &Reconciler{writer: writer, finders: finders}
}

// Save stores payload according to state and returns the next state. On failure the returned
// state is the input state, except that an id learned during duplicate recovery is kept.
func (r *Reconciler) Save(ctx context.Context, state RecordState, payload *storage.ScorePayload) (RecordState, *storage.ScoreRecord, error) {
	switch state.Phase {
	case PhaseAwaitingID:
		return state, nil, ErrRecordIDRequired
	case PhaseSaved:
		record, err := r.writer.Update(ctx, state.RecordID, payload)
		if err != nil {
			logging.Log.Errorf("SCORES: update %s for team %d failed: %v", state.RecordID, payload.TeamID, err)
			return state, nil, err
		}
		return state, record, nil
	}

	record, err := r.writer.Create(ctx, payload)
	if err == nil {
		if record != nil && record.ID != "" {
			return Saved(record.ID), record, nil
		}
		logging.Log.Warnf("SCORES: create for team %d returned no record id", payload.TeamID)
		return RecordState{Phase: PhaseNew}, record, nil
	}
	if !errors.Is(err, storage.ErrDuplicateScore) {
		logging.Log.Errorf("SCORES: create for team %d failed: %v", payload.TeamID, err)
		return state, nil, err
	}

	id, ok := r.recover(ctx, payload.TeamID, payload.JudgeID)
	if !ok {
		logging.Log.Warnf("SCORES: team %d judge %d has a record with unknown id", payload.TeamID, payload.JudgeID)
		return RecordState{Phase: PhaseAwaitingID}, nil, ErrRecordIDRequired
	}

	logging.Log.Infof("SCORES: retrying team %d as update of %s", payload.TeamID, id)
	record, err = r.writer.Update(ctx, id, payload)
	if err != nil {
		logging.Log.Errorf("SCORES: update %s after duplicate failed: %v", id, err)
		return Saved(id), nil, err
	}
	return Saved(id), record, nil
}

func (r *Reconciler) recover(ctx context.Context, teamID, judgeID int) (storage.RecordID, bool) {
	for _, f := range r.finders {
		id, ok, err := f.FindRecordID(ctx, teamID, judgeID)
		if err != nil {
			logging.Log.Warnf("SCORES: record id lookup failed: %v", err)
			continue
		}
		if ok && id != "" {
			return id, true
		}
	}
	return "", false
}

// SupplyID applies an operator supplied record id. Subsequent saves update that record.
func SupplyID(raw string) (RecordState, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return RecordState{Phase: PhaseAwaitingID}, ErrEmptyRecordID
	}
	return Saved(storage.RecordID(id)), nil
}

// Ledger is the save state per team id for one judge.
type Ledger map[int]RecordState

func (l Ledger) State(teamID int) RecordState {
	if s, ok := l[teamID]; ok && s.Phase != "" {
		return s
	}
	return RecordState{Phase: PhaseNew}
}

// Seed marks every team with an existing record as saved, resolving states awaiting an id.
func (l Ledger) Seed(records []*storage.ScoreRecord) {
	for _, r := range records {
		if r == nil || r.TeamID == 0 || r.ID == "" {
			continue
		}
		l[r.TeamID] = Saved(r.ID)
	}
}

// FinderFunc adapts a function to RecordFinder.
type FinderFunc func(ctx context.Context, teamID, judgeID int) (storage.RecordID, bool, error)

func (f FinderFunc) FindRecordID(ctx context.Context, teamID, judgeID int) (storage.RecordID, bool, error) {
	return f(ctx, teamID, judgeID)
}
