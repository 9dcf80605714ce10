package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-popclip/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintln(globals.stdout, string(version.Get(execName()).JSON()))
	return err
}
