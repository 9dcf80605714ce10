package gemini

import (
	"context"
	"net/url"
	"slices"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Model describes a model available to the API key
type Model struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name,omitempty"`
	Description      string `json:"description,omitempty"`
	Version          string `json:"version,omitempty"`
	InputTokenLimit  int    `json:"input_token_limit,omitempty"`
	OutputTokenLimit int    `json:"output_token_limit,omitempty"`
	Generate         bool   `json:"generate"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns all models available to the API key, following
// pagination until the last page
func (c *Client) ListModels(ctx context.Context) (_ []Model, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "ListModels")
	defer func() { endSpan(err) }()

	request := url.Values{}
	result := make([]Model, 0, 50)
	for {
		var response geminiListModelsResponse
		if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models"), client.OptQuery(c.query(request))); err != nil {
			return nil, c.transportError(ctx, err)
		}
		for _, m := range response.Models {
			if m != nil {
				result = append(result, m.toModel())
			}
		}
		if response.NextPageToken == "" {
			break
		}
		request.Set("pageToken", response.NextPageToken)
	}

	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *geminiModel) toModel() Model {
	description := m.Description
	if description == "" {
		description = m.DisplayName
	}
	return Model{
		Name:             strings.TrimPrefix(m.Name, "models/"),
		DisplayName:      m.DisplayName,
		Description:      description,
		Version:          m.Version,
		InputTokenLimit:  m.InputTokenLimit,
		OutputTokenLimit: m.OutputTokenLimit,
		Generate:         slices.Contains(m.SupportedGenerationMethods, methodGenerate),
	}
}
