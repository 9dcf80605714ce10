package main

import (
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	assert "github.com/stretchr/testify/assert"
)

func Test_input_001(t *testing.T) {
	// Arguments, then environment, then stdin
	assert := assert.New(t)
	env := map[string]string{config.EnvText: "from env"}
	getenv := func(k string) string { return env[k] }

	input, err := readInput([]string{"hello", "world"}, getenv, strings.NewReader("from stdin"), false)
	assert.NoError(err)
	assert.Equal("hello world", input.Text)

	input, err = readInput(nil, getenv, strings.NewReader("from stdin"), false)
	assert.NoError(err)
	assert.Equal("from env", input.Text)

	delete(env, config.EnvText)
	input, err = readInput(nil, getenv, strings.NewReader("from stdin"), false)
	assert.NoError(err)
	assert.Equal("from stdin", input.Text)

	input, err = readInput(nil, getenv, strings.NewReader("from stdin"), true)
	assert.NoError(err)
	assert.Equal("", input.Text)
}

type mockAction struct {
	calls atomic.Int32
}

func (*mockAction) Name() string { return "mock" }

func (m *mockAction) Run(_ context.Context, input popclip.Input, options config.Options) popclip.Result {
	m.calls.Add(1)
	// Finish out of order
	if options.Language == "French" {
		time.Sleep(20 * time.Millisecond)
	}
	return popclip.Ok(options.Language + ":" + input.Text)
}

func Test_translate_001(t *testing.T) {
	// Results are returned in argument order
	assert := assert.New(t)
	a := new(mockAction)
	results := translateAll(context.Background(), a, popclip.Input{Text: "hi"}, config.Options{}, []string{"French", "Spanish", "German"})
	assert.Equal(int32(3), a.calls.Load())
	assert.Equal([]popclip.Result{popclip.Ok("French:hi"), popclip.Ok("Spanish:hi"), popclip.Ok("German:hi")}, results)
}

func Test_manifest_001(t *testing.T) {
	assert := assert.New(t)
	var buf bytes.Buffer
	cmd := ManifestCmd{Action: config.ActionRewrite, Exec: "/usr/local/bin/popclip"}
	assert.NoError(cmd.Run(&Globals{stdout: &buf}))
	assert.Contains(buf.String(), "shell script: /usr/local/bin/popclip rewrite")
	assert.Contains(buf.String(), "name: Gemini Improve Writing")
}

func Test_options_001(t *testing.T) {
	// Flags override the environment
	assert := assert.New(t)
	t.Setenv(config.EnvAPIKey, "env-key")
	t.Setenv(config.EnvModel, "gemini-2.0-flash")
	t.Setenv(config.EnvPrompt, "")
	t.Setenv(config.EnvLanguage, "")

	globals := &Globals{Timeout: 5 * time.Second}
	options, err := globals.options(config.Options{Model: "gemini-2.5-flash"})
	assert.NoError(err)
	assert.Equal("env-key", options.APIKey)
	assert.Equal("gemini-2.5-flash", options.Model)
	assert.Equal(5*time.Second, options.Timeout)
}
