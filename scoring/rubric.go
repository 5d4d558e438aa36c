package scoring

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/Dinhh-Chan/aic-judges/storage"
)

type CriterionKey string

const (
	Creativity      CriterionKey = "creativity"
	Feasibility     CriterionKey = "feasibility"
	AIEffectiveness CriterionKey = "ai_effectiveness"
	Presentation    CriterionKey = "presentation"
	SocialImpact    CriterionKey = "social_impact"

	Skills      CriterionKey = "skills"
	Inspiration CriterionKey = "inspiration"
)

type Criterion struct {
	Key   CriterionKey `json:"key"`
	Label string       `json:"label"`
	Max   int          `json:"max"`
}

// TeamCriteria is the team rubric. The maxima add up to 100.
var TeamCriteria = []Criterion{
	{Key: Creativity, Label: "Tính sáng tạo", Max: 25},
	{Key: Feasibility, Label: "Tính khả thi", Max: 25},
	{Key: AIEffectiveness, Label: "Hiệu quả ứng dụng AI", Max: 20},
	{Key: Presentation, Label: "Khả năng thuyết trình", Max: 15},
	{Key: SocialImpact, Label: "Tác động xã hội", Max: 15},
}

// MemberCriteria is scored for every person of a team.
var MemberCriteria = []Criterion{
	{Key: Skills, Label: "Kỹ năng cá nhân và tinh thần học hỏi", Max: 50},
	{Key: Inspiration, Label: "Truyền cảm hứng và chia sẻ kiến thức AI", Max: 50},
}

var ErrUnknownCriterion = errors.New("unknown criterion")
var ErrUnknownMemberSlot = errors.New("unknown member slot")

func lookup(criteria []Criterion, key CriterionKey) (Criterion, bool) {
	for _, c := range criteria {
		if c.Key == key {
			return c, true
		}
	}
	return Criterion{}, false
}

// MaxScore returns the maximum of a team criterion, 0 for unknown keys.
func MaxScore(key CriterionKey) int {
	c, _ := lookup(TeamCriteria, key)
	return c.Max
}

// Clamp saturates v into [0, max].
func Clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ParseScore turns raw form input into a clamped value. Empty input is unset (nil). Otherwise the
// leading integer is used, so "12.5" is 12 and input without digits is 0.
func ParseScore(raw string, max int) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v := Clamp(leadingInt(raw, max), max)
	return &v
}

// leadingInt reads an optional sign and the digits that follow. Out of range values saturate.
func leadingInt(raw string, max int) int {
	end := 0
	if raw[0] == '+' || raw[0] == '-' {
		end = 1
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(raw[:end])
	if err != nil {
		if raw[0] == '-' {
			return 0
		}
		return max
	}
	return v
}

func fromRecord(v *float64, max int) *int {
	if v == nil {
		return nil
	}
	n := Clamp(int(math.Round(*v)), max)
	return &n
}

func toPayload(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

type MemberForm struct {
	Skills      *int `json:"skills"`
	Inspiration *int `json:"inspiration"`
}

func (m MemberForm) Total() int {
	return valueOrZero(m.Skills) + valueOrZero(m.Inspiration)
}

// ScoreForm is the editable state of one judge's score for one team.
type ScoreForm struct {
	Scores  map[CriterionKey]*int               `json:"scores"`
	Members [storage.MemberSlotCount]MemberForm `json:"members"`
	Comment string                              `json:"comment"`
}

func NewScoreForm() *ScoreForm {
	f := &ScoreForm{Scores: make(map[CriterionKey]*int, len(TeamCriteria))}
	for _, c := range TeamCriteria {
		f.Scores[c.Key] = nil
	}
	return f
}

// Set stores a team criterion from raw input; out of range values saturate.
func (f *ScoreForm) Set(key CriterionKey, raw string) error {
	c, ok := lookup(TeamCriteria, key)
	if !ok {
		return ErrUnknownCriterion
	}
	f.Scores[key] = ParseScore(raw, c.Max)
	return nil
}

func (f *ScoreForm) Value(key CriterionKey) *int {
	return f.Scores[key]
}

// Total sums the team criteria, unset counts as zero.
func (f *ScoreForm) Total() int {
	total := 0
	for _, c := range TeamCriteria {
		total += valueOrZero(f.Scores[c.Key])
	}
	return total
}

func (f *ScoreForm) SetMember(slot int, key CriterionKey, raw string) error {
	if slot < 0 || slot >= storage.MemberSlotCount {
		return ErrUnknownMemberSlot
	}
	c, ok := lookup(MemberCriteria, key)
	if !ok {
		return ErrUnknownCriterion
	}
	v := ParseScore(raw, c.Max)
	switch key {
	case Skills:
		f.Members[slot].Skills = v
	case Inspiration:
		f.Members[slot].Inspiration = v
	}
	return nil
}

func (f *ScoreForm) MemberTotal(slot int) int {
	if slot < 0 || slot >= storage.MemberSlotCount {
		return 0
	}
	return f.Members[slot].Total()
}

// Prefill copies the values of an existing record into the form, keeping current values where
// the record has none.
func (f *ScoreForm) Prefill(record *storage.ScoreRecord) {
	if record == nil {
		return
	}
	recorded := map[CriterionKey]*float64{
		Creativity:      record.Creativity,
		Feasibility:     record.Feasibility,
		AIEffectiveness: record.AIEffectiveness,
		Presentation:    record.Presentation,
		SocialImpact:    record.SocialImpact,
	}
	for _, c := range TeamCriteria {
		if v := fromRecord(recorded[c.Key], c.Max); v != nil {
			f.Scores[c.Key] = v
		}
	}
	for slot := 0; slot < storage.MemberSlotCount; slot++ {
		skills, inspiration := record.MemberScores.Slot(slot)
		if v := fromRecord(skills, MemberCriteria[0].Max); v != nil {
			f.Members[slot].Skills = v
		}
		if v := fromRecord(inspiration, MemberCriteria[1].Max); v != nil {
			f.Members[slot].Inspiration = v
		}
	}
	f.Comment = record.Comment
}

// Payload builds the request body. Unset team criteria are sent as zero, unset member
// criteria are left out.
func (f *ScoreForm) Payload(teamID, judgeID int) *storage.ScorePayload {
	p := &storage.ScorePayload{
		TeamID:          teamID,
		JudgeID:         judgeID,
		Creativity:      valueOrZero(f.Scores[Creativity]),
		Feasibility:     valueOrZero(f.Scores[Feasibility]),
		AIEffectiveness: valueOrZero(f.Scores[AIEffectiveness]),
		Presentation:    valueOrZero(f.Scores[Presentation]),
		SocialImpact:    valueOrZero(f.Scores[SocialImpact]),
		TotalScore:      f.Total(),
		Comment:         f.Comment,
	}
	for slot, m := range f.Members {
		p.MemberScores.SetSlot(slot, toPayload(m.Skills), toPayload(m.Inspiration))
	}
	return p
}

// RecordTotals returns the team total and per person totals of a stored record.
func RecordTotals(record *storage.ScoreRecord) (int, [storage.MemberSlotCount]int) {
	form := NewScoreForm()
	form.Prefill(record)
	var members [storage.MemberSlotCount]int
	for slot := range members {
		members[slot] = form.MemberTotal(slot)
	}
	return form.Total(), members
}

// ClampFloat saturates v into [0, max] for fractional administrator input.
func ClampFloat(v float64, max int) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(max) {
		return float64(max)
	}
	return v
}
