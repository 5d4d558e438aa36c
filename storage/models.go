package storage

import (
	"bytes"
	"encoding/json"
)

// RecordID is a backend record id. The backend sends numbers, older deployments sent strings.
type RecordID string

func (id *RecordID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

func (id RecordID) String() string {
	return string(id)
}

// Team is the flat team record served by GET /teams.
type Team struct {
	ID          int    `json:"id"`
	TeamName    string `json:"team_name"`
	Slogan      string `json:"slogan"`
	LogoURL     string `json:"logo_url"`
	MemberCount *int   `json:"member_count"`

	NameLeader      string `json:"name_leader"`
	CodeLeader      string `json:"code_leader"`
	KhoaLeader      string `json:"khoa_leader"`
	ClassLeader     string `json:"class_leader"`
	EmailPtitLeader string `json:"email_ptit_leader"`
	PhoneLeader     string `json:"phone_leader"`
	URLLeader       string `json:"url_leader"`

	NameMember1      string `json:"name_member1"`
	CodeMember1      string `json:"code_member1"`
	KhoaMember1      string `json:"khoa_member1"`
	ClassMember1     string `json:"class_member1"`
	EmailPtitMember1 string `json:"email_ptit_member1"`
	URLMember1       string `json:"url_member1"`

	NameMember2      string `json:"name_member2"`
	CodeMember2      string `json:"code_member2"`
	KhoaMember2      string `json:"khoa_member2"`
	ClassMember2     string `json:"class_member2"`
	EmailPtitMember2 string `json:"email_ptit_member2"`
	URLMember2       string `json:"url_member2"`

	NameMember3      string `json:"name_member3"`
	CodeMember3      string `json:"code_member3"`
	KhoaMember3      string `json:"khoa_member3"`
	ClassMember3     string `json:"class_member3"`
	EmailPtitMember3 string `json:"email_ptit_member3"`
	URLMember3       string `json:"url_member3"`

	NameMember4      string `json:"name_member4"`
	CodeMember4      string `json:"code_member4"`
	KhoaMember4      string `json:"khoa_member4"`
	ClassMember4     string `json:"class_member4"`
	EmailPtitMember4 string `json:"email_ptit_member4"`
	URLMember4       string `json:"url_member4"`

	SurveyLink     string `json:"survey_link"`
	SlideLink      string `json:"slide_link"`
	VideoLink      string `json:"video_link"`
	SourceCodeLink string `json:"source_code_link"`
}

// MemberFields is one member slot of a Team.
type MemberFields struct {
	Name      string
	Code      string
	Khoa      string
	Class     string
	EmailPtit string
	URL       string
}

// MemberSlots returns the four member slots in order, empty ones included.
func (t *Team) MemberSlots() [4]MemberFields {
	return [4]MemberFields{
		{t.NameMember1, t.CodeMember1, t.KhoaMember1, t.ClassMember1, t.EmailPtitMember1, t.URLMember1},
		{t.NameMember2, t.CodeMember2, t.KhoaMember2, t.ClassMember2, t.EmailPtitMember2, t.URLMember2},
		{t.NameMember3, t.CodeMember3, t.KhoaMember3, t.ClassMember3, t.EmailPtitMember3, t.URLMember3},
		{t.NameMember4, t.CodeMember4, t.KhoaMember4, t.ClassMember4, t.EmailPtitMember4, t.URLMember4},
	}
}

type Judge struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// MemberScores holds the optional per-person criteria. Slot order: leader, member1..member4.
type MemberScores struct {
	SkillsLearningLeader  *float64 `json:"skills_learning_leader,omitempty"`
	InspirationLeader     *float64 `json:"inspiration_leader,omitempty"`
	SkillsLearningMember1 *float64 `json:"skills_learning_member1,omitempty"`
	InspirationMember1    *float64 `json:"inspiration_member1,omitempty"`
	SkillsLearningMember2 *float64 `json:"skills_learning_member2,omitempty"`
	InspirationMember2    *float64 `json:"inspiration_member2,omitempty"`
	SkillsLearningMember3 *float64 `json:"skills_learning_member3,omitempty"`
	InspirationMember3    *float64 `json:"inspiration_member3,omitempty"`
	SkillsLearningMember4 *float64 `json:"skills_learning_member4,omitempty"`
	InspirationMember4    *float64 `json:"inspiration_member4,omitempty"`
}

// MemberSlotCount is the number of person slots: the leader plus four members.
const MemberSlotCount = 5

func (m *MemberScores) fields(slot int) (**float64, **float64) {
	switch slot {
	case 0:
		return &m.SkillsLearningLeader, &m.InspirationLeader
	case 1:
		return &m.SkillsLearningMember1, &m.InspirationMember1
	case 2:
		return &m.SkillsLearningMember2, &m.InspirationMember2
	case 3:
		return &m.SkillsLearningMember3, &m.InspirationMember3
	case 4:
		return &m.SkillsLearningMember4, &m.InspirationMember4
	}
	return nil, nil
}

// Slot returns (skills, inspiration) for a person slot. Out of range slots are empty.
func (m *MemberScores) Slot(slot int) (*float64, *float64) {
	skills, inspiration := m.fields(slot)
	if skills == nil {
		return nil, nil
	}
	return *skills, *inspiration
}

func (m *MemberScores) SetSlot(slot int, skills, inspiration *float64) {
	s, i := m.fields(slot)
	if s == nil {
		return
	}
	*s, *i = skills, inspiration
}

// ScoreRecord is one judge's score for one team as stored by the backend.
type ScoreRecord struct {
	ID              RecordID `json:"id"`
	TeamID          int      `json:"team_id"`
	JudgeID         int      `json:"judge_id"`
	Creativity      *float64 `json:"creativity"`
	Feasibility     *float64 `json:"feasibility"`
	AIEffectiveness *float64 `json:"ai_effectiveness"`
	Presentation    *float64 `json:"presentation"`
	SocialImpact    *float64 `json:"social_impact"`
	TotalScore      *float64 `json:"total_score"`
	FinalScore      *float64 `json:"final_score,omitempty"`
	VoteNumber      *int     `json:"vote_number,omitempty"`
	Comment         string   `json:"comment"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
	MemberScores
}

// ScorePayload is the body of POST /scores and PUT /scores/{id}.
type ScorePayload struct {
	TeamID          int    `json:"team_id"`
	JudgeID         int    `json:"judge_id"`
	Creativity      int    `json:"creativity"`
	Feasibility     int    `json:"feasibility"`
	AIEffectiveness int    `json:"ai_effectiveness"`
	Presentation    int    `json:"presentation"`
	SocialImpact    int    `json:"social_impact"`
	TotalScore      int    `json:"total_score"`
	Comment         string `json:"comment"`
	MemberScores
}

// FinalRankingRow is one row of GET /scores/final-scores.
type FinalRankingRow struct {
	TeamID       int      `json:"team_id"`
	FinalScore   *float64 `json:"final_score"`
	AverageScore *float64 `json:"average_score"`
	VoteNumber   *int     `json:"vote_number"`
}

// FinalScoreRecord is a final-round score record managed by administrators.
type FinalScoreRecord struct {
	ID              RecordID `json:"id"`
	TeamID          int      `json:"team_id"`
	JudgeID         int      `json:"judge_id"`
	Creativity      float64  `json:"creativity"`
	Feasibility     float64  `json:"feasibility"`
	AIEffectiveness float64  `json:"ai_effectiveness"`
	Presentation    float64  `json:"presentation"`
	SocialImpact    float64  `json:"social_impact"`
	TotalScore      float64  `json:"total_score"`
	FinalScore      float64  `json:"final_score"`
	VoteTotal       int      `json:"vote_total"`
	Comment         string   `json:"comment"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`
}

type FinalScorePayload struct {
	TeamID          int     `json:"team_id"`
	JudgeID         int     `json:"judge_id"`
	Creativity      float64 `json:"creativity"`
	Feasibility     float64 `json:"feasibility"`
	AIEffectiveness float64 `json:"ai_effectiveness"`
	Presentation    float64 `json:"presentation"`
	SocialImpact    float64 `json:"social_impact"`
	TotalScore      float64 `json:"total_score"`
	VoteTotal       int     `json:"vote_total"`
	Comment         string  `json:"comment"`
}
