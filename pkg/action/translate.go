package action

import (
	"context"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	gemini "github.com/mutablelogic/go-popclip/pkg/gemini"
	opt "github.com/mutablelogic/go-popclip/pkg/opt"
	prompt "github.com/mutablelogic/go-popclip/pkg/prompt"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Translate translates the selection into the configured language
type Translate struct {
	*base
}

var _ Action = (*Translate)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// TranslateParams are the generation parameters for translation
var TranslateParams = opt.WithOpts(
	gemini.WithTemperature(1.0),
	gemini.WithMaxTokens(8192),
	gemini.WithTopP(0.95),
	gemini.WithTopK(64),
	gemini.WithStopSequences("Title"),
	gemini.WithSafety(gemini.HarmCategoryHarassment, gemini.BlockOnlyHigh),
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewTranslate(opts ...Opt) *Translate {
	return &Translate{newBase("Gemini Translate", []string{prompt.Input, prompt.Language}, opts...)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run translates the input text
func (t *Translate) Run(ctx context.Context, input popclip.Input, options config.Options) popclip.Result {
	language := options.ResolvedLanguage()
	return t.run(ctx, input, options, func(text string) string {
		return prompt.Translate(options.Prompt, text, language)
	}, TranslateParams)
}
