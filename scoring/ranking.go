package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"golang.org/x/sync/errgroup"
)

// PodiumSize is the number of ranking rows shown.
const PodiumSize = 3

type PodiumEntry struct {
	Rank         int         `json:"rank"`
	Team         TeamProfile `json:"team"`
	FinalScore   *float64    `json:"finalScore,omitempty"`
	AverageScore *int        `json:"averageScore,omitempty"`
	VoteNumber   *int        `json:"voteNumber,omitempty"`
}

func finalScoreOf(r *storage.FinalRankingRow) float64 {
	if r == nil || r.FinalScore == nil {
		return 0
	}
	return *r.FinalScore
}

// roundFinal rounds to 4 decimals. Zero and missing scores are not shown.
func roundFinal(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	r := math.Round(*v*10000) / 10000
	return &r
}

func roundAverage(v *float64) *int {
	if v == nil || *v == 0 {
		return nil
	}
	r := int(math.Round(*v))
	return &r
}

// TopTeams sorts rows by final score descending, keeps the first n and joins them with teams.
// Rows without a matching team are dropped and not replaced.
func TopTeams(rows []*storage.FinalRankingRow, teams []*storage.Team, n int, staticBase string) []PodiumEntry {
	sorted := make([]*storage.FinalRankingRow, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return finalScoreOf(sorted[i]) > finalScoreOf(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	byID := make(map[int]*storage.Team, len(teams))
	for _, t := range teams {
		if t != nil {
			byID[t.ID] = t
		}
	}

	entries := make([]PodiumEntry, 0, len(sorted))
	for _, r := range sorted {
		t, ok := byID[r.TeamID]
		if !ok {
			logging.Log.Warnf("RANKING: team %d of the ranking is unknown, skipping", r.TeamID)
			continue
		}
		entries = append(entries, PodiumEntry{
			Rank:         len(entries) + 1,
			Team:         NewTeamProfile(t, staticBase),
			FinalScore:   roundFinal(r.FinalScore),
			AverageScore: roundAverage(r.AverageScore),
			VoteNumber:   r.VoteNumber,
		})
	}
	return entries
}

// LoadPodium fetches the ranking and the teams concurrently. Either failure fails the podium.
func LoadPodium(ctx context.Context, scores storage.ScoreStorage, teamStorage storage.TeamStorage, teamLimit int, staticBase string) ([]PodiumEntry, error) {
	var (
		rows  []*storage.FinalRankingRow
		teams []*storage.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := scores.FinalScores(gctx)
		if err != nil {
			return fmt.Errorf("could not load ranking: %w", err)
		}
		rows = r
		return nil
	})
	g.Go(func() error {
		t, err := teamStorage.GetAll(gctx, teamLimit, 0)
		if err != nil {
			return fmt.Errorf("could not load teams: %w", err)
		}
		teams = t
		return nil
	})
	if err := g.Wait(); err != nil {
		logging.Log.Errorf("RANKING: %v", err)
		return nil, err
	}

	return TopTeams(rows, teams, PodiumSize, staticBase), nil
}
