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

// Rewrite corrects spelling, grammar and punctuation in the selection
type Rewrite struct {
	*base
}

var _ Action = (*Rewrite)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// RewriteParams are the generation parameters for rewriting. The low
// temperature keeps the output close to the input.
var RewriteParams = opt.WithOpts(
	gemini.WithTemperature(0.3),
	gemini.WithMaxTokens(1024),
	gemini.WithTopP(0.95),
	gemini.WithTopK(40),
	gemini.WithSafety(gemini.HarmCategoryHarassment, gemini.BlockOnlyHigh),
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewRewrite(opts ...Opt) *Rewrite {
	return &Rewrite{newBase("Gemini Improve Writing", []string{prompt.Input}, opts...)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run rewrites the input text
func (r *Rewrite) Run(ctx context.Context, input popclip.Input, options config.Options) popclip.Result {
	return r.run(ctx, input, options, func(text string) string {
		return prompt.Rewrite(options.Prompt, text)
	}, RewriteParams)
}
