/*
action implements the clipboard actions which rewrite or translate the
selected text. An action never fails towards the host: every outcome is
a popclip.Result, which flattens to the text the host pastes.
*/
package action

import (
	"context"
	"log/slog"
	"slices"
	"time"

	// Packages
	uuid "github.com/google/uuid"
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	popclip "github.com/mutablelogic/go-popclip"
	config "github.com/mutablelogic/go-popclip/pkg/config"
	gemini "github.com/mutablelogic/go-popclip/pkg/gemini"
	opt "github.com/mutablelogic/go-popclip/pkg/opt"
	gootel "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Action transforms selected text
type Action interface {
	// Name returns the title of the action
	Name() string

	// Run performs the action for a single selection
	Run(ctx context.Context, input popclip.Input, options config.Options) popclip.Result
}

// Generator produces text for a prompt
type Generator interface {
	Generate(ctx context.Context, model, prompt string, opts ...opt.Opt) (string, *gemini.Usage, error)
}

// Factory returns a Generator for an API key and request timeout
type Factory func(apiKey string, timeout time.Duration) (Generator, error)

// Opt configures an action
type Opt func(*base)

// base holds the behaviour shared by the actions
type base struct {
	name    string
	require []string
	factory Factory
	opts    []client.ClientOpt
	logger  *slog.Logger
	tracer  trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const tracerName = "github.com/mutablelogic/go-popclip/pkg/action"

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Opt {
	return func(b *base) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClientOpts sets options for the HTTP client, such as tracing or
// an alternative endpoint
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(b *base) {
		b.opts = append(b.opts, opts...)
	}
}

// WithFactory replaces the Gemini client with another Generator
func WithFactory(factory Factory) Opt {
	return func(b *base) {
		if factory != nil {
			b.factory = factory
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newBase(name string, require []string, opts ...Opt) *base {
	b := &base{
		name:    name,
		require: require,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  gootel.Tracer(tracerName),
	}
	b.factory = b.geminiFactory
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the title of the action
func (b *base) Name() string {
	return b.name
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// run validates the input and credential, builds the prompt, and makes a
// single generation request within the configured timeout
func (b *base) run(ctx context.Context, input popclip.Input, options config.Options, build func(string) string, params opt.Opt) (result popclip.Result) {
	id := uuid.NewString()
	model := options.ResolvedModel()
	ctx, endSpan := otel.StartSpan(b.tracer, ctx, b.name,
		attribute.String("id", id),
		attribute.String("model", model),
	)
	defer func() { endSpan(result.Err) }()
	logger := b.logger.With("action", b.name, "id", id, "model", model)
	defer func() {
		if r := recover(); r != nil {
			result = b.fail(logger, popclip.ErrTransport.Withf("%v", r))
		}
	}()

	// Validate
	text, err := config.Text(input)
	if err != nil {
		return b.fail(logger, err)
	}
	key, err := options.Credential()
	if err != nil {
		return b.fail(logger, err)
	}
	if !options.Prompt.IsEmpty() {
		present := options.Prompt.Placeholders()
		for _, placeholder := range b.require {
			if !slices.Contains(present, placeholder) {
				logger.Warn("prompt template is missing a placeholder", "placeholder", placeholder)
			}
		}
	}

	// Bound the request
	timeout := options.ResolvedTimeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	generator, err := b.factory(key, timeout)
	if err != nil {
		return b.fail(logger, err)
	}

	// Generate
	start := time.Now()
	output, usage, err := generator.Generate(ctx, model, build(text), params)
	if err != nil {
		return b.fail(logger, err)
	}

	attrs := []any{"elapsed", time.Since(start).Round(time.Millisecond)}
	if usage != nil {
		attrs = append(attrs, "input_tokens", usage.InputTokens, "output_tokens", usage.OutputTokens)
		if usage.Model != "" {
			attrs = append(attrs, "model_version", usage.Model)
		}
	}
	logger.Info("generated", attrs...)
	return popclip.Ok(output)
}

func (b *base) fail(logger *slog.Logger, err error) popclip.Result {
	result := popclip.Fail(err)
	logger.Error("failed", "reason", result.Reason().Error(), "detail", popclip.Detail(err))
	return result
}

func (b *base) geminiFactory(apiKey string, timeout time.Duration) (Generator, error) {
	opts := append([]client.ClientOpt{client.OptTimeout(timeout)}, b.opts...)
	return gemini.New(apiKey, opts...)
}
