package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	// Packages
	client "github.com/mutablelogic/go-client"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	gemini "github.com/mutablelogic/go-popclip/pkg/gemini"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct {
	APIKey string `name:"apikey" env:"GEMINI_API_KEY" help:"Gemini API key"`
	All    bool   `name:"all" help:"Include models which cannot generate content"`
	JSON   bool   `name:"json" help:"Output JSON"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ModelsCmd) Run(globals *Globals) error {
	options, err := globals.options(config.Options{APIKey: cmd.APIKey})
	if err != nil {
		return err
	}
	key, err := options.Credential()
	if err != nil {
		return err
	}

	opts := append(globals.clientOpts(), client.OptTimeout(options.ResolvedTimeout()))
	api, err := gemini.New(key, opts...)
	if err != nil {
		return err
	}
	models, err := api.ListModels(globals.ctx)
	if err != nil {
		return err
	}

	// Filter and sort
	if !cmd.All {
		models = slices.DeleteFunc(models, func(m gemini.Model) bool { return !m.Generate })
	}
	slices.SortFunc(models, func(a, b gemini.Model) int { return strings.Compare(a.Name, b.Name) })

	if cmd.JSON {
		enc := json.NewEncoder(globals.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models)
	}

	w := tabwriter.NewWriter(globals.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINPUT\tOUTPUT\tDESCRIPTION")
	for _, model := range models {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", model.Name, model.InputTokenLimit, model.OutputTokenLimit, model.Description)
	}
	return w.Flush()
}
