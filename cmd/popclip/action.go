package main

import (
	"context"
	"fmt"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	action "github.com/mutablelogic/go-popclip/pkg/action"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	prompt "github.com/mutablelogic/go-popclip/pkg/prompt"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type GenerateFlags struct {
	APIKey string `name:"apikey" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model  string `name:"model" help:"Model name (default gemini-2.0-flash-lite)"`
	Prompt string `name:"prompt" help:"Prompt template"`
}

type RewriteCmd struct {
	Text []string `arg:"" optional:"" help:"Text to rewrite (default POPCLIP_TEXT or stdin)"`
	GenerateFlags
}

type TranslateCmd struct {
	Text []string `arg:"" optional:"" help:"Text to translate (default POPCLIP_TEXT or stdin)"`
	Lang []string `name:"lang" short:"l" help:"Target language name or code, may be repeated"`
	GenerateFlags
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// maxLanguages is the number of translations run at once
const maxLanguages = 4

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *RewriteCmd) Run(globals *Globals) error {
	return runaction(globals, cmd.Text, cmd.overrides(), func(ctx context.Context, input popclip.Input, options config.Options) error {
		result := action.NewRewrite(globals.actionOpts()...).Run(ctx, input, options)
		_, err := fmt.Fprint(globals.stdout, result)
		return err
	})
}

func (cmd *TranslateCmd) Run(globals *Globals) error {
	return runaction(globals, cmd.Text, cmd.overrides(), func(ctx context.Context, input popclip.Input, options config.Options) error {
		translate := action.NewTranslate(globals.actionOpts()...)

		// A single target language
		if len(cmd.Lang) <= 1 {
			if len(cmd.Lang) == 1 {
				options.Language = cmd.Lang[0]
			}
			_, err := fmt.Fprint(globals.stdout, translate.Run(ctx, input, options))
			return err
		}

		// Several target languages, printed in the order given
		results := translateAll(ctx, translate, input, options, cmd.Lang)
		for i, result := range results {
			if i > 0 {
				if _, err := fmt.Fprint(globals.stdout, "\n\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(globals.stdout, "%s:\n%s", config.ResolveLanguage(cmd.Lang[i]), result); err != nil {
				return err
			}
		}
		return nil
	})
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (flags GenerateFlags) overrides() config.Options {
	return config.Options{
		APIKey: flags.APIKey,
		Model:  flags.Model,
		Prompt: prompt.Template(flags.Prompt),
	}
}

// runaction resolves the options and input, then calls fn. Action
// failures are printed rather than returned.
func runaction(globals *Globals, args []string, overrides config.Options, fn func(context.Context, popclip.Input, config.Options) error) error {
	options, err := globals.options(overrides)
	if err != nil {
		return err
	}
	input, err := globals.input(args)
	if err != nil {
		return err
	}
	return fn(globals.ctx, input, options)
}

// translateAll runs one translation per language and returns the results
// in the same order as the languages
func translateAll(ctx context.Context, a action.Action, input popclip.Input, options config.Options, languages []string) []popclip.Result {
	results := make([]popclip.Result, len(languages))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxLanguages)
	for i, language := range languages {
		group.Go(func() error {
			options := options
			options.Language = language
			results[i] = a.Run(ctx, input, options)
			return nil
		})
	}
	group.Wait()
	return results
}
