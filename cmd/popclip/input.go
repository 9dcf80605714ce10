package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// input returns the selected text from the arguments, the PopClip
// environment or standard input, in that order
func (g *Globals) input(args []string) (popclip.Input, error) {
	return readInput(args, os.Getenv, os.Stdin, term.IsTerminal(int(os.Stdin.Fd())))
}

// readInput does not read from stdin when it is a terminal. An empty
// input is returned as-is so the action reports it.
func readInput(args []string, getenv func(string) string, stdin io.Reader, isTerminal bool) (popclip.Input, error) {
	if len(args) > 0 {
		return popclip.Input{Text: strings.Join(args, " ")}, nil
	}
	if text := getenv(config.EnvText); text != "" {
		return popclip.Input{Text: text}, nil
	}
	if isTerminal || stdin == nil {
		return popclip.Input{}, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return popclip.Input{}, fmt.Errorf("stdin: %w", err)
	}
	return popclip.Input{Text: string(data)}, nil
}
