package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	action "github.com/mutablelogic/go-popclip/pkg/action"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	version "github.com/mutablelogic/go-popclip/pkg/version"
	gootel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Config  string        `name:"config" type:"path" env:"POPCLIP_CONFIG" help:"YAML configuration file"`
	Timeout time.Duration `name:"timeout" env:"POPCLIP_TIMEOUT" help:"Request timeout (default 30s)"`

	// Context
	ctx    context.Context
	logger *slog.Logger
	tracer trace.Tracer
	stdout io.Writer
}

type CLI struct {
	Globals

	// Actions
	Rewrite   RewriteCmd   `cmd:"" help:"Correct spelling, grammar and punctuation"`
	Translate TranslateCmd `cmd:"" help:"Translate text"`

	// Extension
	Models   ModelsCmd   `cmd:"" help:"Return a list of models"`
	Manifest ManifestCmd `cmd:"" help:"Write a PopClip extension manifest"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Gemini text actions for PopClip"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.stdout = os.Stdout
	cli.Globals.tracer = gootel.Tracer("github.com/mutablelogic/go-popclip/cmd/popclip")

	// Log to stderr, PopClip pastes stdout
	level := slog.LevelWarn
	if cli.Debug || cli.Verbose {
		level = slog.LevelDebug
	}
	cli.Globals.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// clientOpts returns options for the HTTP client from the global flags
func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{
		client.OptUserAgent(version.UserAgent(execName())),
	}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	return opts
}

// actionOpts returns options shared by the actions
func (g *Globals) actionOpts() []action.Opt {
	return []action.Opt{
		action.WithLogger(g.logger),
		action.WithClientOpts(g.clientOpts()...),
	}
}

// options loads the configuration file and PopClip environment, then
// applies the global flags and the overrides, which win when non-empty
func (g *Globals) options(overrides config.Options) (config.Options, error) {
	var options config.Options
	if g.Config != "" {
		if loaded, err := config.Load(g.Config); err != nil {
			return options, err
		} else {
			options = loaded
		}
	} else {
		options = config.FromEnv(os.Getenv)
	}
	options = options.Merge(config.Options{Timeout: g.Timeout})
	return options.Merge(overrides), nil
}
