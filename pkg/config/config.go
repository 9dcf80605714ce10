/*
config resolves the per-invocation options for the clipboard actions:
API key, model, prompt template, target language and timeout. Options
come from a YAML file, the environment injected by PopClip, and explicit
values, in increasing order of precedence.
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	prompt "github.com/mutablelogic/go-popclip/pkg/prompt"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Options is the configuration for a single invocation
type Options struct {
	APIKey   string          `yaml:"apikey"`
	Model    string          `yaml:"model"`
	Prompt   prompt.Template `yaml:"prompt"`
	Language string          `yaml:"tolang"`
	Timeout  time.Duration   `yaml:"timeout"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultModel    = "gemini-2.0-flash-lite"
	DefaultLanguage = "English"
	DefaultTimeout  = 30 * time.Second
)

// Models are the selectable model identifiers
var Models = []string{
	"gemini-2.0-flash-lite",
	"gemini-2.0-flash",
	"gemini-2.5-flash-lite",
	"gemini-2.5-flash",
}

// Environment variables set by PopClip for shell script extensions
const (
	EnvText     = "POPCLIP_TEXT"
	EnvAPIKey   = "POPCLIP_OPTION_APIKEY"
	EnvModel    = "POPCLIP_OPTION_MODEL"
	EnvPrompt   = "POPCLIP_OPTION_PROMPT"
	EnvLanguage = "POPCLIP_OPTION_TOLANG"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load reads options from a YAML file when path is not empty, then
// applies the PopClip environment on top
func Load(path string) (Options, error) {
	var options Options
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Options{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &options); err != nil {
			return Options{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}
	return options.Merge(FromEnv(os.Getenv)), nil
}

// FromEnv returns the options injected by PopClip, using getenv to
// read each variable
func FromEnv(getenv func(string) string) Options {
	return Options{
		APIKey:   getenv(EnvAPIKey),
		Model:    getenv(EnvModel),
		Prompt:   prompt.Template(getenv(EnvPrompt)),
		Language: getenv(EnvLanguage),
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Merge returns a copy of o with every non-empty field of other applied
func (o Options) Merge(other Options) Options {
	if strings.TrimSpace(other.APIKey) != "" {
		o.APIKey = other.APIKey
	}
	if strings.TrimSpace(other.Model) != "" {
		o.Model = other.Model
	}
	if !other.Prompt.IsEmpty() {
		o.Prompt = other.Prompt
	}
	if strings.TrimSpace(other.Language) != "" {
		o.Language = other.Language
	}
	if other.Timeout > 0 {
		o.Timeout = other.Timeout
	}
	return o
}

// Credential returns the trimmed API key, or ErrMissingCredential
func (o Options) Credential() (string, error) {
	if key := strings.TrimSpace(o.APIKey); key != "" {
		return key, nil
	}
	return "", popclip.ErrMissingCredential.With("API key is not set")
}

// ResolvedModel returns the configured model or the default
func (o Options) ResolvedModel() string {
	return ResolveModel(o.Model)
}

// ResolvedTimeout returns the configured timeout or the default
func (o Options) ResolvedTimeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// ResolvedLanguage returns the target language display name
func (o Options) ResolvedLanguage() string {
	return ResolveLanguage(o.Language)
}

// ResolveModel returns the first non-empty value, or DefaultModel. A value
// containing newlines or commas, as a multiple-choice field may produce,
// contributes its first non-empty element.
func ResolveModel(values ...string) string {
	for _, value := range values {
		for _, field := range strings.FieldsFunc(value, func(r rune) bool {
			return r == '\n' || r == ','
		}) {
			if field = strings.TrimSpace(field); field != "" {
				return field
			}
		}
	}
	return DefaultModel
}

// Text returns the input text, or ErrMissingInput when it is empty
func Text(input popclip.Input) (string, error) {
	if input.Text == "" {
		return "", popclip.ErrMissingInput.With("input text is empty")
	}
	return input.Text, nil
}
