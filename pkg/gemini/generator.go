package gemini

import (
	"context"
	"errors"
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	popclip "github.com/mutablelogic/go-popclip"
	opt "github.com/mutablelogic/go-popclip/pkg/opt"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Usage reports the model version and token counts for a generation
type Usage struct {
	Model        string `json:"model,omitempty"`
	InputTokens  uint   `json:"input_tokens"`
	OutputTokens uint   `json:"output_tokens"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the prompt as a single user turn and returns the text of
// the first candidate. Errors wrap one of popclip.ErrBadParameter,
// popclip.ErrBlocked, popclip.ErrEmptyOutput or popclip.ErrTransport.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts ...opt.Opt) (_ string, _ *Usage, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Generate",
		attribute.String("model", model),
		attribute.Int("prompt_length", len(prompt)),
	)
	defer func() { endSpan(err) }()

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return "", nil, err
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return "", nil, popclip.ErrBadParameter.With("model is required")
	}

	// Build request
	request := generateRequestFromOpts(prompt, options)
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return "", nil, popclip.ErrBadParameter.With(err)
	}

	// Send request
	var response geminiGenerateResponse
	if err := c.DoWithContext(ctx, payload, &response,
		client.OptPath("models", model+":"+methodGenerate),
		client.OptQuery(c.query(nil)),
	); err != nil {
		return "", nil, c.transportError(ctx, err)
	}

	// Extract the text
	text, err := textFromResponse(&response)
	if err != nil {
		return "", nil, err
	}
	return text, usageFromResponse(&response), nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a geminiGenerateRequest for a single prompt
func generateRequestFromOpts(prompt string, options opt.Options) *geminiGenerateRequest {
	request := &geminiGenerateRequest{
		Contents:       []*geminiContent{geminiNewTextContent(roleUser, prompt)},
		SafetySettings: safetySettingsFromOpts(options),
	}

	// Generation config: the omitzero tag drops the block when nothing is set
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.GenerationConfig.Temperature = &v
	}
	if options.Has(opt.MaxTokensKey) {
		request.GenerationConfig.MaxOutputTokens = int(options.GetUint(opt.MaxTokensKey))
	}
	if options.Has(opt.TopKKey) {
		v := int(options.GetUint(opt.TopKKey))
		request.GenerationConfig.TopK = &v
	}
	if options.Has(opt.TopPKey) {
		v := options.GetFloat64(opt.TopPKey)
		request.GenerationConfig.TopP = &v
	}
	if ss := options.GetStringArray(opt.StopSequencesKey); len(ss) > 0 {
		request.GenerationConfig.StopSequences = ss
	}

	return request
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE EXTRACTION

// textFromResponse joins the text parts of the first candidate with newlines
func textFromResponse(response *geminiGenerateResponse) (string, error) {
	if len(response.Candidates) == 0 || response.Candidates[0] == nil {
		reason := noCandidatesMsg
		if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
			reason = response.PromptFeedback.BlockReason
		}
		return "", popclip.ErrBlocked.With(reason)
	}

	candidate := response.Candidates[0]
	var parts []string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought || part.Text == "" {
				continue
			}
			parts = append(parts, part.Text)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		if candidate.FinishReason != "" {
			return "", popclip.ErrEmptyOutput.Withf("finish reason %s", candidate.FinishReason)
		}
		return "", popclip.ErrEmptyOutput.With("no text parts")
	}
	return text, nil
}

func usageFromResponse(response *geminiGenerateResponse) *Usage {
	usage := &Usage{Model: response.ModelVersion}
	if response.UsageMetadata != nil {
		usage.InputTokens = uint(response.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = uint(response.UsageMetadata.CandidatesTokenCount)
	}
	return usage
}

// transportError categorises a failed HTTP exchange. go-client includes the
// server's response body in its error text when there is one. Network
// errors carry the request URL, which includes the API key, so the URL is
// dropped and any remaining occurrence of the key is redacted.
func (c *Client) transportError(ctx context.Context, err error) error {
	detail := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		detail = urlErr.Op + ": " + urlErr.Err.Error()
	}
	if c.apiKey != "" {
		detail = strings.ReplaceAll(detail, c.apiKey, redacted)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return popclip.ErrTransport.Withf("request timed out: %s", detail)
	case errors.Is(err, context.Canceled):
		return popclip.ErrTransport.Withf("request cancelled: %s", detail)
	}
	return popclip.ErrTransport.With(detail)
}
