package scoring

import (
	"strings"

	"github.com/Dinhh-Chan/aic-judges/storage"
)

// ResolveAsset turns a backend image path into a URL. Absolute URLs pass through, relative
// paths are joined to base with their leading slashes removed.
func ResolveAsset(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + strings.TrimLeft(path, "/")
}

type Person struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
	Year      string `json:"year"`
	Class     string `json:"class"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// Initial is the avatar fallback letter.
func (p Person) Initial() string {
	for _, r := range p.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

type Submissions struct {
	SurveyLink     string `json:"surveyLink,omitempty"`
	SlideLink      string `json:"slideLink,omitempty"`
	VideoLink      string `json:"videoLink,omitempty"`
	SourceCodeLink string `json:"sourceCodeLink,omitempty"`
}

// TeamProfile is the display form of a backend team.
type TeamProfile struct {
	ID          int         `json:"id"`
	Name        string      `json:"teamName"`
	Slogan      string      `json:"slogan"`
	Logo        string      `json:"logo,omitempty"`
	MemberCount int         `json:"memberCount"`
	Leader      Person      `json:"leader"`
	Members     []Person    `json:"members"`
	Submissions Submissions `json:"submissions"`
}

// People returns the leader followed by the members, matching member score slot order.
func (t TeamProfile) People() []Person {
	return append([]Person{t.Leader}, t.Members...)
}

// NewTeamProfile maps a backend team. A member slot is included only when its name is set.
func NewTeamProfile(t *storage.Team, staticBase string) TeamProfile {
	members := make([]Person, 0, 4)
	for _, m := range t.MemberSlots() {
		if m.Name == "" {
			continue
		}
		members = append(members, Person{
			Name:      m.Name,
			StudentID: m.Code,
			Year:      m.Khoa,
			Class:     m.Class,
			Email:     m.EmailPtit,
			Avatar:    ResolveAsset(staticBase, m.URL),
		})
	}

	leaderName := t.NameLeader
	if leaderName == "" {
		leaderName = "Leader"
	}

	memberCount := len(members) + 1
	if t.MemberCount != nil {
		memberCount = *t.MemberCount
	}

	return TeamProfile{
		ID:          t.ID,
		Name:        t.TeamName,
		Slogan:      t.Slogan,
		Logo:        ResolveAsset(staticBase, t.LogoURL),
		MemberCount: memberCount,
		Leader: Person{
			Name:      leaderName,
			StudentID: t.CodeLeader,
			Year:      t.KhoaLeader,
			Class:     t.ClassLeader,
			Email:     t.EmailPtitLeader,
			Phone:     t.PhoneLeader,
			Avatar:    ResolveAsset(staticBase, t.URLLeader),
		},
		Members: members,
		Submissions: Submissions{
			SurveyLink:     t.SurveyLink,
			SlideLink:      t.SlideLink,
			VideoLink:      t.VideoLink,
			SourceCodeLink: t.SourceCodeLink,
		},
	}
}

func NewTeamProfiles(teams []*storage.Team, staticBase string) []TeamProfile {
	profiles := make([]TeamProfile, 0, len(teams))
	for _, t := range teams {
		if t == nil {
			continue
		}
		profiles = append(profiles, NewTeamProfile(t, staticBase))
	}
	return profiles
}
