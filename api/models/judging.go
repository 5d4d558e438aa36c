package models

import (
	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
)

type Round string

const (
	RoundPreliminary Round = "preliminary"
	RoundFinal       Round = "final"
)

type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type LoginView struct {
	Username string         `json:"username,omitempty"`
	Judge    *storage.Judge `json:"judge,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// MemberSlotView is one person of the selected team with their member scores.
type MemberSlotView struct {
	Slot   int                `json:"slot"`
	Field  string             `json:"field"`
	Role   string             `json:"role"`
	Person scoring.Person     `json:"person"`
	Scores scoring.MemberForm `json:"scores"`
	Total  int                `json:"total"`
}

type SelectedTeam struct {
	Team    scoring.TeamProfile  `json:"team"`
	Form    *scoring.ScoreForm   `json:"form"`
	Total   int                  `json:"total"`
	People  []MemberSlotView     `json:"people"`
	State   scoring.RecordState  `json:"state"`
	Method  string               `json:"method,omitempty"`
	NeedsID bool                 `json:"needsRecordId"`
	Podium  *scoring.PodiumEntry `json:"podium,omitempty"`
}

// ScoredTeam summarises one team already scored by the judge.
type ScoredTeam struct {
	TeamID       int                          `json:"teamId"`
	TeamName     string                       `json:"teamName"`
	Record       *storage.ScoreRecord         `json:"record"`
	Total        int                          `json:"total"`
	MemberTotals [storage.MemberSlotCount]int `json:"memberTotals"`
}

type JudgingView struct {
	Round          Round                 `json:"round"`
	Judge          storage.Judge         `json:"judge"`
	Criteria       []scoring.Criterion   `json:"criteria"`
	MemberCriteria []scoring.Criterion   `json:"memberCriteria"`
	Teams          []scoring.TeamProfile `json:"teams"`
	Selected       *SelectedTeam         `json:"selected,omitempty"`
	Summary        []ScoredTeam          `json:"summary"`
	Message        string                `json:"message,omitempty"`
	Error          string                `json:"error,omitempty"`
}

type ResultsView struct {
	Podium []scoring.PodiumEntry `json:"podium"`
	Error  string                `json:"error,omitempty"`
}
