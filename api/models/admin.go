package models

import (
	"strconv"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
)

type AdminLoginRequest struct {
	Token string `form:"token" json:"token"`
}

// FinalScoreRequest creates a final-round record, or updates it when ID is set.
type FinalScoreRequest struct {
	ID              string   `form:"id" json:"id"`
	TeamID          RawScore `form:"team_id" json:"team_id"`
	JudgeID         RawScore `form:"judge_id" json:"judge_id"`
	Creativity      RawScore `form:"creativity" json:"creativity"`
	Feasibility     RawScore `form:"feasibility" json:"feasibility"`
	AIEffectiveness RawScore `form:"ai_effectiveness" json:"ai_effectiveness"`
	Presentation    RawScore `form:"presentation" json:"presentation"`
	SocialImpact    RawScore `form:"social_impact" json:"social_impact"`
	VoteTotal       RawScore `form:"vote_total" json:"vote_total"`
	Comment         string   `form:"comment" json:"comment"`
}

func parseFloat(r RawScore) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(r)), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(r RawScore) int {
	v, err := strconv.Atoi(strings.TrimSpace(string(r)))
	if err != nil {
		return 0
	}
	return v
}

// ToPayload clamps the criteria to their maxima and sums them. Team and judge ids of zero are invalid.
func (r *FinalScoreRequest) ToPayload() (*storage.FinalScorePayload, bool) {
	p := &storage.FinalScorePayload{
		TeamID:          parseInt(r.TeamID),
		JudgeID:         parseInt(r.JudgeID),
		Creativity:      scoring.ClampFloat(parseFloat(r.Creativity), scoring.MaxScore(scoring.Creativity)),
		Feasibility:     scoring.ClampFloat(parseFloat(r.Feasibility), scoring.MaxScore(scoring.Feasibility)),
		AIEffectiveness: scoring.ClampFloat(parseFloat(r.AIEffectiveness), scoring.MaxScore(scoring.AIEffectiveness)),
		Presentation:    scoring.ClampFloat(parseFloat(r.Presentation), scoring.MaxScore(scoring.Presentation)),
		SocialImpact:    scoring.ClampFloat(parseFloat(r.SocialImpact), scoring.MaxScore(scoring.SocialImpact)),
		VoteTotal:       parseInt(r.VoteTotal),
		Comment:         r.Comment,
	}
	if p.VoteTotal < 0 {
		p.VoteTotal = 0
	}
	p.TotalScore = p.Creativity + p.Feasibility + p.AIEffectiveness + p.Presentation + p.SocialImpact
	return p, p.TeamID > 0 && p.JudgeID > 0
}

// FinalScoreRequestFromRecord fills the request from an existing record, for editing.
func FinalScoreRequestFromRecord(rec *storage.FinalScoreRecord) *FinalScoreRequest {
	f := func(v float64) RawScore { return RawScore(strconv.FormatFloat(v, 'f', -1, 64)) }
	return &FinalScoreRequest{
		ID:              rec.ID.String(),
		TeamID:          RawScore(strconv.Itoa(rec.TeamID)),
		JudgeID:         RawScore(strconv.Itoa(rec.JudgeID)),
		Creativity:      f(rec.Creativity),
		Feasibility:     f(rec.Feasibility),
		AIEffectiveness: f(rec.AIEffectiveness),
		Presentation:    f(rec.Presentation),
		SocialImpact:    f(rec.SocialImpact),
		VoteTotal:       RawScore(strconv.Itoa(rec.VoteTotal)),
		Comment:         rec.Comment,
	}
}

type FinalScoreRow struct {
	Record    *storage.FinalScoreRecord `json:"record"`
	TeamName  string                    `json:"teamName"`
	JudgeName string                    `json:"judgeName"`
}

type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AdminScoresView struct {
	Records  []FinalScoreRow     `json:"records"`
	Teams    []Option            `json:"teams"`
	Judges   []Option            `json:"judges"`
	Criteria []scoring.Criterion `json:"criteria"`
	Form     *FinalScoreRequest  `json:"form"`
	Editing  bool                `json:"editing"`
	Message  string              `json:"message,omitempty"`
	Error    string              `json:"error,omitempty"`
}
