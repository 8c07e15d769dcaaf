// Package locale holds the user-facing texts of the board in every
// supported language.
package locale

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key is also the English text.
const (
	KeyColumnToDo       = "To Do"
	KeyColumnInProgress = "In Progress"
	KeyColumnDone       = "Done"
	KeyNewColumn        = "New Column"
	KeyAssigned         = "%s was assigned to task \"%s\""
	KeyDeleteTask       = "Delete Task"
	KeyDeleteColumn     = "Delete Column"
	KeyDeleteConfirm    = "Are you sure you want to delete \"%s\"? This action cannot be undone."
	KeyNoNotifications  = "No notifications yet"
	KeyUnassign         = "Remove assignment"
	KeyAssignTo         = "Assign to"
)

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

var translations = map[language.Tag]map[string]string{
	language.BrazilianPortuguese: {
		KeyColumnToDo:       "A Fazer",
		KeyColumnInProgress: "Em Andamento",
		KeyColumnDone:       "Concluído",
		KeyNewColumn:        "Nova Coluna",
		KeyAssigned:         "%s foi atribuído(a) à tarefa \"%s\"",
		KeyDeleteTask:       "Excluir Tarefa",
		KeyDeleteColumn:     "Excluir Coluna",
		KeyDeleteConfirm:    "Tem certeza que deseja excluir \"%s\"? Esta ação não pode ser desfeita.",
		KeyNoNotifications:  "Nenhuma notificação ainda",
		KeyUnassign:         "Remover atribuição",
		KeyAssignTo:         "Atribuir a",
	},
}

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

var ages = map[language.Tag][]humanize.RelTimeMagnitude{
	language.English: {
		{D: time.Minute, Format: "just now", DivBy: time.Second},
		{D: time.Hour, Format: "%d minutes", DivBy: time.Minute},
		{D: day, Format: "%d hours", DivBy: time.Hour},
		{D: month, Format: "%d days", DivBy: day},
		{D: year, Format: "%d months", DivBy: month},
		{D: math.MaxInt64, Format: "%d years", DivBy: year},
	},
	language.BrazilianPortuguese: {
		{D: time.Minute, Format: "agora mesmo", DivBy: time.Second},
		{D: time.Hour, Format: "%d minutos", DivBy: time.Minute},
		{D: day, Format: "%d horas", DivBy: time.Hour},
		{D: month, Format: "%d dias", DivBy: day},
		{D: year, Format: "%d meses", DivBy: month},
		{D: math.MaxInt64, Format: "%d anos", DivBy: year},
	},
}

var cat = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, text := range entries {
			if err := b.SetString(tag, key, text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Locale renders texts for one supported language
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the closest supported locale for a BCP 47 name such as
// "pt-BR" or "en". Unknown or empty names fall back to English.
func New(name string) Locale {
	tag := language.English
	if parsed, err := language.Parse(name); err == nil {
		_, index, _ := matcher.Match(parsed)
		tag = supported[index]
	}
	return Locale{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// Tag returns the language tag of the locale
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Text returns the translated text for key, formatted with args
func (l Locale) Text(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// SeedColumnTitles returns the titles of the three columns a new board starts with
func (l Locale) SeedColumnTitles() [3]string {
	return [3]string{
		l.Text(KeyColumnToDo),
		l.Text(KeyColumnInProgress),
		l.Text(KeyColumnDone),
	}
}

// NewColumnTitle returns the placeholder title of an added column
func (l Locale) NewColumnTitle() string {
	return l.Text(KeyNewColumn)
}

// Assigned returns the notification text for an assignment
func (l Locale) Assigned(member, content string) string {
	return l.Text(KeyAssigned, member, content)
}

// Age renders how long ago t happened relative to now, e.g. "5 minutes"
func (l Locale) Age(t, now time.Time) string {
	if t.After(now) {
		t = now
	}
	return humanize.CustomRelTime(t, now, "", "", ages[l.tag])
}

// Supported lists the names of the supported locales
func Supported() []string {
	names := make([]string, 0, len(supported))
	for _, tag := range supported {
		names = append(names, tag.String())
	}
	return names
}
