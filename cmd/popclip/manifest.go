package main

import (
	"os"

	// Packages
	config "github.com/mutablelogic/go-popclip/pkg/config"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ManifestCmd struct {
	Action string `arg:"" enum:"rewrite,translate" help:"Action (rewrite, translate)"`
	Exec   string `name:"exec" help:"Command run by the extension (default this executable)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ManifestCmd) Run(globals *Globals) error {
	exec := cmd.Exec
	if exec == "" {
		if path, err := os.Executable(); err != nil {
			return err
		} else {
			exec = path
		}
	}

	manifest, err := config.NewManifest(cmd.Action, exec)
	if err != nil {
		return err
	}
	data, err := manifest.YAML()
	if err != nil {
		return err
	}
	_, err = globals.stdout.Write(data)
	return err
}
