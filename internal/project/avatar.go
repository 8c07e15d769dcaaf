package project

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

// Initials returns the upper-case first letters of up to two words of name
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// AvatarColor returns the hex color of a member's avatar. The same name
// always gets the same color.
func AvatarColor(name string) string {
	if name == "" {
		return colorful.Hsl(0, 0, 0.7).Hex()
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(name)) {
		hash = int32(unit) + ((hash << 5) - hash)
	}
	hue := hash % 360
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsl(float64(hue), 0.5, 0.6).Hex()
}
