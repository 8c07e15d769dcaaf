package parser

import (
	"regexp"
	"strings"

	"github.com/balkashynov/fluxo/internal/models"
)

var mentionRegex = regexp.MustCompile(`@([\p{L}\p{N}_.-]+)`)

// ParsedCard represents card text with its inline metadata extracted
type ParsedCard struct {
	Content  string
	Assignee *models.Assignee
	Errors   []string
}

// ParseCard extracts an assignee mention from card text.
// Syntax: "Write release notes @Ana" or "@ana_souza Review PR"
// A mention matches a member by first name or by full name with spaces
// written as underscores, ignoring case. Only the first matching mention
// assigns; unknown mentions stay in the content.
func ParseCard(input string, roster []models.Assignee) ParsedCard {
	result := ParsedCard{Errors: []string{}}

	content := mentionRegex.ReplaceAllStringFunc(input, func(mention string) string {
		handle := strings.TrimPrefix(mention, "@")
		member, ok := lookupMember(handle, roster)
		if !ok {
			result.Errors = append(result.Errors, "Unknown member '"+handle+"'")
			return mention
		}
		if result.Assignee == nil {
			result.Assignee = &member
		}
		return ""
	})

	// Clean up the content (remove extra spaces)
	result.Content = strings.Join(strings.Fields(content), " ")

	return result
}

// lookupMember finds the roster member a mention handle refers to
func lookupMember(handle string, roster []models.Assignee) (models.Assignee, bool) {
	handle = strings.ToLower(handle)

	for _, m := range roster {
		full := strings.ToLower(strings.Join(strings.Fields(m.Name), "_"))
		if full == handle {
			return m, true
		}
	}
	for _, m := range roster {
		fields := strings.Fields(m.Name)
		if len(fields) > 0 && strings.ToLower(fields[0]) == handle {
			return m, true
		}
	}
	return models.Assignee{}, false
}
