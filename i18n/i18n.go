// Package i18n holds the message catalogues for the kart simulator and
// resolves which language a session plays in.
package i18n

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/wricardo/kartsim/game/kart"
)

var supportedTags = []language.Tag{
	language.English,
	language.French,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag returns the supported tag closest to value. Empty or
// unparseable values resolve to Default.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// ColorName returns the localized name of a kart color
func ColorName(p *message.Printer, c kart.Color) string {
	return p.Sprintf("color." + string(c))
}

// ColorAliases maps every accepted spelling of each palette color, canonical
// and localized, to the color. Keys are case folded.
func ColorAliases(p *message.Printer) map[string]kart.Color {
	aliases := make(map[string]kart.Color)
	for _, c := range kart.Palette() {
		aliases[string(c)] = c
		aliases[cases.Fold().String(ColorName(p, c))] = c
	}
	return aliases
}

// messageKeys lists every key the game prints. Each supported language must
// translate all of them.
var messageKeys = []string{
	"welcome",
	"prompt.character",
	"prompt.color",
	"prompt.engine",
	"prompt.marker",
	"color.invalid",
	"color.red",
	"color.green",
	"color.blue",
	"kart.description",
	"error.kart",
	"error.kart.missing",
	"error.character",
	"error.input_closed",
	"race.start",
	"race.goal",
	"turn.prompt",
	"turn.roll",
	"turn.slip",
	"turn.move",
	"race.won",
	"race.summary",
}

// Keys returns the message keys used by the game
func Keys() []string {
	return slices.Clone(messageKeys)
}

// Missing returns the keys that have no translation for tag. An untranslated
// key prints as itself.
func Missing(tag language.Tag) []string {
	p := Printer(tag)
	var missing []string
	for _, key := range messageKeys {
		if p.Sprintf(key) == key {
			missing = append(missing, key)
		}
	}
	return missing
}

// Placeholders returns how many arguments the translation of key expects
func Placeholders(tag language.Tag, key string) int {
	return strings.Count(Printer(tag).Sprintf(key), "(MISSING)")
}
