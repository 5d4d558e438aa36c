package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeJudgeStorage struct {
	storage.JudgeStorage
	judges []*storage.Judge
	err    error
}

func (f *fakeJudgeStorage) GetAll(context.Context) ([]*storage.Judge, error) {
	return f.judges, f.err
}

func TestDirectory(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - names and fallbacks", func(t *testing.T) {
		d := NewDirectory(
			[]*storage.Team{{ID: 1, TeamName: "Alpha"}, {ID: 2}},
			[]*storage.Judge{{ID: 1, FullName: "Nguyen Van A", Username: "a"}, {ID: 2, Username: "judge2"}, {ID: 3}},
		)

		assert.Equal(t, "Alpha", d.TeamName(1))
		assert.Equal(t, "Team 2", d.TeamName(2))
		assert.Equal(t, "Team 7", d.TeamName(7))
		assert.Equal(t, "Nguyen Van A", d.JudgeName(1))
		assert.Equal(t, "judge2", d.JudgeName(2))
		assert.Equal(t, "Judge 3", d.JudgeName(3))
		assert.Equal(t, "Judge 9", d.JudgeName(9))
	})

	t.Run("Unhappy path - failed fetch leaves the list empty", func(t *testing.T) {
		d := LoadDirectory(context.Background(),
			&fakeTeamStorage{err: errors.New("down")},
			&fakeJudgeStorage{judges: []*storage.Judge{{ID: 4, Username: "x"}}},
			100)

		assert.Empty(t, d.Teams)
		assert.Len(t, d.Judges, 1)
		assert.Equal(t, "Team 1", d.TeamName(1))
		assert.Equal(t, "x", d.JudgeName(4))
	})
}
