package scoring

import (
	"context"
	"fmt"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"golang.org/x/sync/errgroup"
)

// Directory resolves team and judge ids to display names.
type Directory struct {
	Teams  []*storage.Team
	Judges []*storage.Judge

	teamsByID  map[int]*storage.Team
	judgesByID map[int]*storage.Judge
}

func NewDirectory(teams []*storage.Team, judges []*storage.Judge) *Directory {
	d := &Directory{
		Teams:      teams,
		Judges:     judges,
		teamsByID:  make(map[int]*storage.Team, len(teams)),
		judgesByID: make(map[int]*storage.Judge, len(judges)),
	}
	for _, t := range teams {
		if t != nil {
			d.teamsByID[t.ID] = t
		}
	}
	for _, j := range judges {
		if j != nil {
			d.judgesByID[j.ID] = j
		}
	}
	return d
}

func (d *Directory) Team(id int) (*storage.Team, bool) {
	t, ok := d.teamsByID[id]
	return t, ok
}

func (d *Directory) TeamName(id int) string {
	if t, ok := d.teamsByID[id]; ok && t.TeamName != "" {
		return t.TeamName
	}
	return fmt.Sprintf("Team %d", id)
}

func (d *Directory) JudgeName(id int) string {
	if j, ok := d.judgesByID[id]; ok {
		if j.FullName != "" {
			return j.FullName
		}
		if j.Username != "" {
			return j.Username
		}
	}
	return fmt.Sprintf("Judge %d", id)
}

// LoadDirectory fetches teams and judges concurrently. A failed fetch leaves its list empty.
func LoadDirectory(ctx context.Context, teamStorage storage.TeamStorage, judgeStorage storage.JudgeStorage, teamLimit int) *Directory {
	var (
		teams  []*storage.Team
		judges []*storage.Judge
		g      errgroup.Group
	)

	g.Go(func() error {
		t, err := teamStorage.GetAll(ctx, teamLimit, 0)
		if err != nil {
			logging.Log.Warnf("DIRECTORY: could not load teams: %v", err)
			return nil
		}
		teams = t
		return nil
	})
	g.Go(func() error {
		j, err := judgeStorage.GetAll(ctx)
		if err != nil {
			logging.Log.Warnf("DIRECTORY: could not load judges: %v", err)
			return nil
		}
		judges = j
		return nil
	})
	_ = g.Wait()

	return NewDirectory(teams, judges)
}
