package config

import (
	"strings"

	// Packages
	language "golang.org/x/text/language"
	display "golang.org/x/text/language/display"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Languages are the selectable translation targets
var Languages = []string{
	"English",
	"Chinese",
	"Russian",
	"French",
	"Português",
	"Spanish",
}

var languageTags = map[string]language.Tag{
	"English":   language.English,
	"Chinese":   language.Chinese,
	"Russian":   language.Russian,
	"French":    language.French,
	"Português": language.Portuguese,
	"Spanish":   language.Spanish,
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResolveLanguage returns the display name used in translation prompts.
// Names from Languages are matched case-insensitively, BCP 47 codes such
// as "fr" or "pt-BR" map to the matching name in Languages or else the
// English name of the language, and anything else is passed through.
func ResolveLanguage(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultLanguage
	}
	for _, name := range Languages {
		if strings.EqualFold(name, value) {
			return name
		}
	}

	tag, err := language.Parse(value)
	if err != nil {
		return value
	}
	base, _ := tag.Base()
	for _, name := range Languages {
		if b, _ := languageTags[name].Base(); b == base {
			return name
		}
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return value
}
