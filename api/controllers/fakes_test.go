package controllers

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/Dinhh-Chan/aic-judges/storage"
)

type fakeTeamStorage struct {
	teams []*storage.Team
	err   error
}

func (f *fakeTeamStorage) GetAll(context.Context, int, int) ([]*storage.Team, error) {
	return f.teams, f.err
}

type fakeJudgeStorage struct {
	judges    []*storage.Judge
	passwords map[string]string
	authErr   error
}

func (f *fakeJudgeStorage) GetAll(context.Context) ([]*storage.Judge, error) {
	return f.judges, nil
}

func (f *fakeJudgeStorage) Authenticate(_ context.Context, username, password string) (*storage.Judge, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if pw, ok := f.passwords[username]; !ok || pw != password {
		return nil, errors.Join(storage.ErrUnauthorized, &storage.APIError{StatusCode: 401, Message: "Sai tên đăng nhập hoặc mật khẩu"})
	}
	for _, j := range f.judges {
		if j.Username == username {
			return j, nil
		}
	}
	return nil, storage.ErrUnauthorized
}

type scoreCall struct {
	method  string
	id      storage.RecordID
	payload storage.ScorePayload
}

// fakeScoreStorage behaves like the backend: one record per (team, judge) pair.
type fakeScoreStorage struct {
	mu          sync.Mutex
	records     []*storage.ScoreRecord
	calls       []scoreCall
	nextID      int
	hideRecords bool
	failWrites  error
	ranking     []*storage.FinalRankingRow
	rankingErr  error
}

func (f *fakeScoreStorage) GetByJudge(_ context.Context, judgeID int) ([]*storage.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideRecords {
		return nil, nil
	}
	var out []*storage.ScoreRecord
	for _, r := range f.records {
		if r.JudgeID == judgeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeScoreStorage) Create(_ context.Context, p *storage.ScorePayload) (*storage.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, scoreCall{method: "POST", payload: *p})
	if f.failWrites != nil {
		return nil, f.failWrites
	}
	for _, r := range f.records {
		if r.TeamID == p.TeamID && r.JudgeID == p.JudgeID {
			return nil, errors.Join(storage.ErrDuplicateScore, &storage.APIError{StatusCode: 409, Message: "Score already exists"})
		}
	}
	f.nextID++
	rec := toRecord(storage.RecordID(strconv.Itoa(100+f.nextID)), p)
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeScoreStorage) Update(_ context.Context, id storage.RecordID, p *storage.ScorePayload) (*storage.ScoreRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, scoreCall{method: "PUT", id: id, payload: *p})
	if f.failWrites != nil {
		return nil, f.failWrites
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records[i] = toRecord(id, p)
			return f.records[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeScoreStorage) FinalScores(context.Context) ([]*storage.FinalRankingRow, error) {
	return f.ranking, f.rankingErr
}

func toRecord(id storage.RecordID, p *storage.ScorePayload) *storage.ScoreRecord {
	f := func(v int) *float64 { x := float64(v); return &x }
	return &storage.ScoreRecord{
		ID:              id,
		TeamID:          p.TeamID,
		JudgeID:         p.JudgeID,
		Creativity:      f(p.Creativity),
		Feasibility:     f(p.Feasibility),
		AIEffectiveness: f(p.AIEffectiveness),
		Presentation:    f(p.Presentation),
		SocialImpact:    f(p.SocialImpact),
		TotalScore:      f(p.TotalScore),
		Comment:         p.Comment,
		MemberScores:    p.MemberScores,
	}
}

type fakeFinalScoreStorage struct {
	records []*storage.FinalScoreRecord
	nextID  int
	err     error
}

func (f *fakeFinalScoreStorage) GetAll(context.Context) ([]*storage.FinalScoreRecord, error) {
	return f.records, f.err
}

func (f *fakeFinalScoreStorage) Create(_ context.Context, p *storage.FinalScorePayload) (*storage.FinalScoreRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	rec := finalRecord(storage.RecordID(strconv.Itoa(f.nextID)), p)
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeFinalScoreStorage) Update(_ context.Context, id storage.RecordID, p *storage.FinalScorePayload) (*storage.FinalScoreRecord, error) {
	for i, r := range f.records {
		if r.ID == id {
			f.records[i] = finalRecord(id, p)
			return f.records[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeFinalScoreStorage) Delete(_ context.Context, id storage.RecordID) error {
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func finalRecord(id storage.RecordID, p *storage.FinalScorePayload) *storage.FinalScoreRecord {
	return &storage.FinalScoreRecord{
		ID:              id,
		TeamID:          p.TeamID,
		JudgeID:         p.JudgeID,
		Creativity:      p.Creativity,
		Feasibility:     p.Feasibility,
		AIEffectiveness: p.AIEffectiveness,
		Presentation:    p.Presentation,
		SocialImpact:    p.SocialImpact,
		TotalScore:      p.TotalScore,
		VoteTotal:       p.VoteTotal,
		Comment:         p.Comment,
	}
}

func sampleTeams() []*storage.Team {
	return []*storage.Team{
		{ID: 1, TeamName: "Alpha", NameLeader: "Lan", NameMember1: "Minh"},
		{ID: 2, TeamName: "Beta", NameLeader: "Hoa"},
		{ID: 3, TeamName: "Gamma"},
		{ID: 4, TeamName: "Delta"},
	}
}

func sampleJudges() []*storage.Judge {
	return []*storage.Judge{
		{ID: 7, Username: "gk7", FullName: "Giam Khao 7"},
		{ID: 8, Username: "gk8"},
	}
}
