package models

import (
	"bytes"
	"encoding/json"

	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
)

// RawScore is a score input as typed by the operator. JSON clients may send numbers or null.
type RawScore string

func (r *RawScore) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawScore(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RawScore(n.String())
	return nil
}

type ScoreRequest struct {
	Creativity      RawScore `form:"creativity" json:"creativity"`
	Feasibility     RawScore `form:"feasibility" json:"feasibility"`
	AIEffectiveness RawScore `form:"ai_effectiveness" json:"ai_effectiveness"`
	Presentation    RawScore `form:"presentation" json:"presentation"`
	SocialImpact    RawScore `form:"social_impact" json:"social_impact"`

	SkillsLeader       RawScore `form:"skills_leader" json:"skills_leader"`
	InspirationLeader  RawScore `form:"inspiration_leader" json:"inspiration_leader"`
	SkillsMember1      RawScore `form:"skills_member1" json:"skills_member1"`
	InspirationMember1 RawScore `form:"inspiration_member1" json:"inspiration_member1"`
	SkillsMember2      RawScore `form:"skills_member2" json:"skills_member2"`
	InspirationMember2 RawScore `form:"inspiration_member2" json:"inspiration_member2"`
	SkillsMember3      RawScore `form:"skills_member3" json:"skills_member3"`
	InspirationMember3 RawScore `form:"inspiration_member3" json:"inspiration_member3"`
	SkillsMember4      RawScore `form:"skills_member4" json:"skills_member4"`
	InspirationMember4 RawScore `form:"inspiration_member4" json:"inspiration_member4"`

	Comment string `form:"comment" json:"comment"`
}

// RecordIDRequest supplies the id of an existing record and saves the scores against it.
type RecordIDRequest struct {
	RecordID string `form:"record_id" json:"record_id"`
	ScoreRequest
}

// ToForm builds the score form, clamping every value.
func (r *ScoreRequest) ToForm() *scoring.ScoreForm {
	form := scoring.NewScoreForm()
	_ = form.Set(scoring.Creativity, string(r.Creativity))
	_ = form.Set(scoring.Feasibility, string(r.Feasibility))
	_ = form.Set(scoring.AIEffectiveness, string(r.AIEffectiveness))
	_ = form.Set(scoring.Presentation, string(r.Presentation))
	_ = form.Set(scoring.SocialImpact, string(r.SocialImpact))

	members := [storage.MemberSlotCount][2]RawScore{
		{r.SkillsLeader, r.InspirationLeader},
		{r.SkillsMember1, r.InspirationMember1},
		{r.SkillsMember2, r.InspirationMember2},
		{r.SkillsMember3, r.InspirationMember3},
		{r.SkillsMember4, r.InspirationMember4},
	}
	for slot, m := range members {
		_ = form.SetMember(slot, scoring.Skills, string(m[0]))
		_ = form.SetMember(slot, scoring.Inspiration, string(m[1]))
	}

	form.Comment = r.Comment
	return form
}
