package project

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/fluxo/internal/models"
)

func TestCreateProject(t *testing.T) {
	s := NewSession()
	assert.False(t, s.Active())
	assert.Empty(t, s.Members())

	_, err := s.Create("   ", "", nil)
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.False(t, s.Active())

	ana := models.Assignee{ID: "user-ana", Name: "Ana"}
	p, err := s.Create("  Fluxo  ", "logo.png", []models.Assignee{ana})
	require.NoError(t, err)
	assert.Equal(t, "Fluxo", p.Name)
	assert.Equal(t, "logo.png", p.Logo)
	assert.Equal(t, []models.Assignee{ana}, s.Members())
}

func TestUpdateAndDelete(t *testing.T) {
	s := NewSession()
	_, err := s.Update(models.Project{Name: "x"})
	assert.ErrorIs(t, err, ErrNoProject)

	_, err = s.Create("Fluxo", "", nil)
	require.NoError(t, err)

	_, err = s.Update(models.Project{Name: ""})
	assert.ErrorIs(t, err, ErrNameRequired)

	updated, err := s.Update(models.Project{Name: "Fluxo 2", Members: []models.Assignee{{ID: "user-1", Name: "Bia"}}})
	require.NoError(t, err)
	assert.Equal(t, "Fluxo 2", updated.Name)
	assert.Len(t, s.Members(), 1)

	s.Delete()
	_, err = s.Project()
	assert.ErrorIs(t, err, ErrNoProject)
	assert.Empty(t, s.Members())
}

func TestMembersAreCopies(t *testing.T) {
	s := NewSession()
	_, err := s.Create("Fluxo", "", []models.Assignee{{ID: "user-1", Name: "Ana"}})
	require.NoError(t, err)

	members := s.Members()
	members[0].Name = "changed"
	assert.Equal(t, "Ana", s.Members()[0].Name)
}

func TestAddMember(t *testing.T) {
	members, ana, err := AddMember(nil, "  Ana  ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", ana.Name)
	assert.True(t, strings.HasPrefix(ana.ID, "user-"))
	assert.Equal(t, []models.Assignee{ana}, members)

	_, _, err = AddMember(members, "Ana")
	assert.ErrorIs(t, err, ErrDuplicateMember)
	_, _, err = AddMember(members, " ")
	assert.ErrorIs(t, err, ErrNameRequired)

	members, bruno, err := AddMember(members, "Bruno")
	require.NoError(t, err)
	assert.NotEqual(t, ana.ID, bruno.ID)
	assert.Len(t, members, 2)

	members = RemoveMember(members, ana.ID)
	assert.Equal(t, []models.Assignee{bruno}, members)
	assert.Equal(t, []models.Assignee{bruno}, RemoveMember(members, "user-missing"))
}

func TestInviteLink(t *testing.T) {
	link := InviteLink("https://fluxozen.app/")
	require.True(t, strings.HasPrefix(link, "https://fluxozen.app/invite/"))
	code := strings.TrimPrefix(link, "https://fluxozen.app/invite/")
	assert.Len(t, code, 8)
	assert.NotEqual(t, link, InviteLink("https://fluxozen.app"))
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana", "A"},
		{"ana souza", "AS"},
		{"Ana Beatriz Souza", "AB"},
		{"  élio   ramos ", "ÉR"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestAvatarColor(t *testing.T) {
	assert.Equal(t, AvatarColor("Ana"), AvatarColor("Ana"))
	assert.Regexp(t, `^#[0-9a-f]{6}$`, AvatarColor("Bruno"))
	assert.Equal(t, "#b3b3b3", AvatarColor(""))
}
