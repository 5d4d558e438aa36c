package scoring

import (
	"testing"

	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAsset(t *testing.T) {
	base := "https://cdn.example.com/static/"
	assert.Equal(t, "", ResolveAsset(base, ""))
	assert.Equal(t, "https://cdn.example.com/static/logos/a.png", ResolveAsset(base, "//logos/a.png"))
	assert.Equal(t, "http://other/x.png", ResolveAsset(base, "http://other/x.png"))
	assert.Equal(t, "https://other/x.png", ResolveAsset(base, "https://other/x.png"))
}

func TestNewTeamProfile(t *testing.T) {
	t.Run("Happy path - sparse members", func(t *testing.T) {
		team := &storage.Team{
			ID:          3,
			TeamName:    "Beta",
			LogoURL:     "/logo.png",
			NameLeader:  "Lan",
			CodeLeader:  "B21",
			NameMember1: "Minh",
			URLMember1:  "m1.png",
			NameMember3: "Hoa",
			SlideLink:   "https://slides",
		}
		p := NewTeamProfile(team, "https://s/")

		assert.Equal(t, "Beta", p.Name)
		assert.Equal(t, "https://s/logo.png", p.Logo)
		assert.Equal(t, "Lan", p.Leader.Name)
		require.Len(t, p.Members, 2)
		assert.Equal(t, "Minh", p.Members[0].Name)
		assert.Equal(t, "https://s/m1.png", p.Members[0].Avatar)
		assert.Equal(t, "Hoa", p.Members[1].Name)
		assert.Equal(t, 3, p.MemberCount)
		assert.Equal(t, "https://slides", p.Submissions.SlideLink)
		assert.Len(t, p.People(), 3)
	})

	t.Run("Happy path - defaults", func(t *testing.T) {
		count := 4
		p := NewTeamProfile(&storage.Team{ID: 1, MemberCount: &count}, "")
		assert.Equal(t, "Leader", p.Leader.Name)
		assert.Equal(t, "L", p.Leader.Initial())
		assert.Empty(t, p.Members)
		assert.Equal(t, 4, p.MemberCount)
		assert.Equal(t, "?", Person{}.Initial())
	})
}
