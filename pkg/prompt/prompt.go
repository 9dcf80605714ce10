/*
prompt builds the text sent to the model from a template and the
user's selection. Placeholders are plain substrings and every occurrence
is replaced, with no escaping of the substituted values.
*/
package prompt

import (
	"sort"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Template is a prompt containing placeholders
type Template string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Input    = "{input}"
	Language = "{lang}"
)

const (
	// DefaultRewrite is used when no rewrite template is configured
	DefaultRewrite Template = "I will give you text content, you will rewrite it and output a better version of my text. " +
		"Correct spelling, grammar, and punctuation errors in the given text. Keep the meaning the same. " +
		"Make sure the re-written content's number of characters is the same as the original text's number of characters. " +
		"Do not alter the original structure and formatting outlined in any way. Only give me the output and nothing else. " +
		"Now, using the concepts above, re-write the following text. " +
		"Respond in the same language variety or dialect of the following text: " + Input

	// DefaultTranslate is used when no translate template is configured
	DefaultTranslate Template = "I will give you text content, you will rewrite it and translate the text into " + Language + " language. " +
		"Keep the meaning the same. Do not alter the original structure and formatting outlined in any way. " +
		"Only give me the output and nothing else.Now, using the concepts above, translate the following text:" + Input
)

var placeholders = []string{Input, Language}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsEmpty returns true if the template is empty or only whitespace
func (t Template) IsEmpty() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Or returns t, or def when t is empty
func (t Template) Or(def Template) Template {
	if t.IsEmpty() {
		return def
	}
	return t
}

// Placeholders returns the known placeholders present in the template,
// sorted
func (t Template) Placeholders() []string {
	var result []string
	for _, p := range placeholders {
		if strings.Contains(string(t), p) {
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result
}

// Build replaces every occurrence of each placeholder with its value.
// Values are not themselves scanned for placeholders. Where placeholders
// overlap, known placeholders win, then other keys in sorted order.
func (t Template) Build(values map[string]string) string {
	if len(values) == 0 {
		return string(t)
	}
	pairs := make([]string, 0, len(values)*2)
	for _, p := range placeholders {
		if v, ok := values[p]; ok {
			pairs = append(pairs, p, v)
		}
	}
	other := make([]string, 0, len(values))
	for p := range values {
		if !isKnown(p) && p != "" {
			other = append(other, p)
		}
	}
	sort.Strings(other)
	for _, p := range other {
		pairs = append(pairs, p, values[p])
	}
	return strings.NewReplacer(pairs...).Replace(string(t))
}

// Rewrite builds a rewrite prompt for text
func Rewrite(t Template, text string) string {
	return t.Or(DefaultRewrite).Build(map[string]string{
		Input: text,
	})
}

// Translate builds a translation prompt for text into the named language
func Translate(t Template, text, language string) string {
	return t.Or(DefaultTranslate).Build(map[string]string{
		Input:    text,
		Language: language,
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func isKnown(p string) bool {
	for _, k := range placeholders {
		if k == p {
			return true
		}
	}
	return false
}
