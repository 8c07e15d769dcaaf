// Package project holds the identity of the board's project: its name, logo
// and member roster.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/balkashynov/fluxo/internal/models"
)

var (
	// ErrNameRequired is returned when a project or member name is blank
	ErrNameRequired = errors.New("name is required")
	// ErrDuplicateMember is returned when a member name is already on the roster
	ErrDuplicateMember = errors.New("member already exists")
	// ErrNoProject is returned when no project has been created yet
	ErrNoProject = errors.New("no project")
)

// Session keeps the current project. It satisfies board.Roster.
type Session struct {
	current *models.Project
}

// NewSession returns a session with no project
func NewSession() *Session {
	return &Session{}
}

// Create starts a project. The name is trimmed and must not be empty.
func (s *Session) Create(name, logo string, members []models.Assignee) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("project: %w", ErrNameRequired)
	}

	s.current = &models.Project{
		Name:    name,
		Logo:    strings.TrimSpace(logo),
		Members: cloneMembers(members),
	}
	return s.Project()
}

// Update replaces the project wholesale
func (s *Session) Update(p models.Project) (models.Project, error) {
	if s.current == nil {
		return models.Project{}, ErrNoProject
	}
	return s.Create(p.Name, p.Logo, p.Members)
}

// Delete discards the project
func (s *Session) Delete() {
	s.current = nil
}

// Project returns a copy of the current project
func (s *Session) Project() (models.Project, error) {
	if s.current == nil {
		return models.Project{}, ErrNoProject
	}
	p := *s.current
	p.Members = cloneMembers(s.current.Members)
	return p, nil
}

// Active reports whether a project exists
func (s *Session) Active() bool {
	return s.current != nil
}

// Members returns the roster of the current project, empty when there is none
func (s *Session) Members() []models.Assignee {
	if s.current == nil {
		return nil
	}
	return cloneMembers(s.current.Members)
}

// AddMember appends a new member with a generated id. Names are trimmed and
// compared exactly, like the roster editor does.
func AddMember(members []models.Assignee, name string) ([]models.Assignee, models.Assignee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return members, models.Assignee{}, fmt.Errorf("member: %w", ErrNameRequired)
	}
	for _, m := range members {
		if m.Name == name {
			return members, models.Assignee{}, fmt.Errorf("member %q: %w", name, ErrDuplicateMember)
		}
	}

	member := models.Assignee{ID: "user-" + uuid.NewString(), Name: name}
	return append(cloneMembers(members), member), member, nil
}

// RemoveMember drops the member with the given id
func RemoveMember(members []models.Assignee, id string) []models.Assignee {
	kept := make([]models.Assignee, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return kept
}

// InviteLink returns a fresh invitation URL under base
func InviteLink(base string) string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strings.TrimRight(base, "/") + "/invite/" + code
}

func cloneMembers(members []models.Assignee) []models.Assignee {
	if members == nil {
		return []models.Assignee{}
	}
	return append([]models.Assignee(nil), members...)
}
