/*
gemini implements a client for the Google Gemini generateContent REST API.
https://ai.google.dev/gemini-api/docs
*/
package gemini

import (
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	popclip "github.com/mutablelogic/go-popclip"
	gootel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	apiKey string
	tracer trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	tracerName      = "github.com/mutablelogic/go-popclip/pkg/gemini"
	redacted        = "[REDACTED]"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new Gemini API client with the given API key. The key is
// sent as the "key" query parameter on every request. An OptEndpoint
// in opts overrides the default endpoint.
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, popclip.ErrMissingCredential.With("API key is required")
	}
	opts = append([]client.ClientOpt{client.OptEndpoint(DefaultEndpoint)}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{
			Client: c,
			apiKey: apiKey,
			tracer: gootel.Tracer(tracerName),
		}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// query returns the credential query merged with any extra values
func (c *Client) query(values url.Values) url.Values {
	q := make(url.Values, len(values)+1)
	for k, v := range values {
		q[k] = v
	}
	q.Set("key", c.apiKey)
	return q
}
