package config

import (
	"bytes"
	"fmt"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	prompt "github.com/mutablelogic/go-popclip/pkg/prompt"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Manifest is a PopClip extension Config.yaml
type Manifest struct {
	Name         string         `yaml:"name"`
	Identifier   string         `yaml:"identifier"`
	Icon         string         `yaml:"icon,omitempty"`
	Entitlements []string       `yaml:"entitlements,omitempty"`
	Options      []ManifestOpt  `yaml:"options"`
	Actions      []ManifestStep `yaml:"actions"`
}

// ManifestOpt is a user-configurable extension option
type ManifestOpt struct {
	Identifier   string   `yaml:"identifier"`
	Label        string   `yaml:"label"`
	Type         string   `yaml:"type"`
	Values       []string `yaml:"values,omitempty"`
	DefaultValue string   `yaml:"default value,omitempty"`
	Description  string   `yaml:"description,omitempty"`
}

// ManifestStep is an action which runs this program
type ManifestStep struct {
	Title       string `yaml:"title"`
	ShellScript string `yaml:"shell script"`
	After       string `yaml:"after"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ActionRewrite   = "rewrite"
	ActionTranslate = "translate"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewManifest returns the extension manifest for the named action. The
// exec argument is the command PopClip runs.
func NewManifest(action, exec string) (*Manifest, error) {
	apikey := ManifestOpt{
		Identifier:  "apikey",
		Label:       "API Key",
		Type:        "secret",
		Description: "Obtain API key from Google AI Studio",
	}
	model := ManifestOpt{
		Identifier:   "model",
		Label:        "Model",
		Type:         "multiple",
		Values:       Models,
		DefaultValue: DefaultModel,
	}

	switch action {
	case ActionRewrite:
		return &Manifest{
			Name:         "Gemini Improve Writing",
			Identifier:   "com.github.mutablelogic.popclip.rewrite",
			Icon:         "iconify:tabler:file-text-ai",
			Entitlements: []string{"network"},
			Options: []ManifestOpt{apikey, model, {
				Identifier:  "prompt",
				Label:       "Improve Writing Prompt",
				Type:        "string",
				Description: "Enter the prompt template using " + prompt.Input + " as a placeholder for the text",
			}},
			Actions: []ManifestStep{{
				Title:       "Gemini Improve Writing",
				ShellScript: exec + " " + ActionRewrite,
				After:       "paste-result",
			}},
		}, nil
	case ActionTranslate:
		return &Manifest{
			Name:         "Gemini Translate",
			Identifier:   "com.github.mutablelogic.popclip.translate",
			Icon:         "iconify:mdi:alpha-e-circle",
			Entitlements: []string{"network"},
			Options: []ManifestOpt{apikey, model, {
				Identifier:   "prompt",
				Label:        "Translate Prompt",
				Type:         "string",
				DefaultValue: string(prompt.DefaultTranslate),
				Description:  "Enter the prompt template using " + prompt.Input + " " + prompt.Language + " as a placeholder for the text",
			}, {
				Identifier:   "tolang",
				Label:        "Language",
				Type:         "multiple",
				Values:       Languages,
				DefaultValue: DefaultLanguage,
				Description:  "The language to be translated",
			}},
			Actions: []ManifestStep{{
				Title:       "Gemini Translate",
				ShellScript: exec + " " + ActionTranslate,
				After:       "paste-result",
			}},
		}, nil
	}
	return nil, popclip.ErrBadParameter.Withf("unknown action %q", action)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// YAML returns the manifest as a YAML document
func (m *Manifest) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return buf.Bytes(), nil
}
