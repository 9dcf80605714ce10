package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	popclip "github.com/mutablelogic/go-popclip"
	gemini "github.com/mutablelogic/go-popclip/pkg/gemini"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// newServer returns a test server which replies to every request with
// status and body, and records the last request
func newServer(t *testing.T, status int, body string, last *http.Request, lastBody *[]byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if last != nil {
			*last = *r.Clone(context.Background())
		}
		if lastBody != nil {
			var data json.RawMessage
			if err := json.NewDecoder(r.Body).Decode(&data); err == nil {
				*lastBody = data
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func newClient(t *testing.T, endpoint string, opts ...client.ClientOpt) *gemini.Client {
	t.Helper()
	c, err := gemini.New("test-key", append([]client.ClientOpt{client.OptEndpoint(endpoint + "/v1beta")}, opts...)...)
	require.NoError(t, err)
	return c
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_client_001(t *testing.T) {
	// An empty API key is rejected before any request is made
	assert := assert.New(t)
	_, err := gemini.New("  ")
	assert.ErrorIs(err, popclip.ErrMissingCredential)

	c, err := gemini.New("key")
	assert.NoError(err)
	assert.NotNil(c)
}

func Test_client_002(t *testing.T) {
	// Generate posts to the model endpoint with the key as a query parameter
	assert := assert.New(t)
	var req http.Request
	var body []byte
	server := newServer(t, http.StatusOK, `{
		"candidates": [
			{"content": {"role": "model", "parts": [{"text": "Hello"}, {"text": "world"}]}, "finishReason": "STOP"},
			{"content": {"role": "model", "parts": [{"text": "ignored"}]}}
		],
		"usageMetadata": {"promptTokenCount": 5, "candidatesTokenCount": 2, "totalTokenCount": 7}
	}`, &req, &body)
	c := newClient(t, server.URL)

	text, usage, err := c.Generate(context.Background(), "gemini-2.0-flash", "Say hello", gemini.WithTemperature(0.3))
	assert.NoError(err)
	assert.Equal("Hello\nworld", text)
	assert.Equal(uint(5), usage.InputTokens)
	assert.Equal(uint(2), usage.OutputTokens)

	assert.Equal(http.MethodPost, req.Method)
	assert.True(strings.HasSuffix(req.URL.Path, "/models/gemini-2.0-flash:generateContent"), req.URL.Path)
	assert.Equal("test-key", req.URL.Query().Get("key"))
	assert.Contains(req.Header.Get("Content-Type"), "application/json")
	assert.JSONEq(`{
		"contents": [{"role": "user", "parts": [{"text": "Say hello"}]}],
		"generationConfig": {"temperature": 0.3}
	}`, string(body))
}

func Test_client_003(t *testing.T) {
	// A blocked prompt reports the block reason
	assert := assert.New(t)
	server := newServer(t, http.StatusOK, `{"promptFeedback": {"blockReason": "SAFETY"}}`, nil, nil)
	c := newClient(t, server.URL)

	_, _, err := c.Generate(context.Background(), "gemini-2.0-flash", "prompt")
	assert.ErrorIs(err, popclip.ErrBlocked)
	assert.Contains(err.Error(), "SAFETY")
}

func Test_client_004(t *testing.T) {
	// Server errors are transport errors
	assert := assert.New(t)
	server := newServer(t, http.StatusBadRequest, `{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`, nil, nil)
	c := newClient(t, server.URL)

	_, _, err := c.Generate(context.Background(), "gemini-2.0-flash", "prompt")
	assert.ErrorIs(err, popclip.ErrTransport)
	assert.Contains(popclip.Detail(err), "API key not valid")
	assert.NotContains(err.Error(), "test-key")
}

func Test_client_005(t *testing.T) {
	// A slow server is abandoned at the client timeout
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)
	c := newClient(t, server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := c.Generate(ctx, "gemini-2.0-flash", "prompt")
	assert.ErrorIs(err, popclip.ErrTransport)
	assert.Less(time.Since(start), 3*time.Second)
}

func Test_client_006(t *testing.T) {
	// Bad options and a missing model fail without a request
	assert := assert.New(t)
	c := newClient(t, "http://127.0.0.1:1")

	_, _, err := c.Generate(context.Background(), "gemini-2.0-flash", "prompt", gemini.WithTopK(0))
	assert.ErrorIs(err, popclip.ErrBadParameter)

	_, _, err = c.Generate(context.Background(), " ", "prompt")
	assert.ErrorIs(err, popclip.ErrBadParameter)
}

func Test_client_007(t *testing.T) {
	// ListModels follows pagination
	assert := assert.New(t)
	var tokens []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("test-key", r.URL.Query().Get("key"))
		token := r.URL.Query().Get("pageToken")
		tokens = append(tokens, token)
		w.Header().Set("Content-Type", "application/json")
		if token == "" {
			w.Write([]byte(`{"models": [{"name": "models/gemini-2.0-flash", "supportedGenerationMethods": ["generateContent"]}], "nextPageToken": "page2"}`))
		} else {
			w.Write([]byte(`{"models": [{"name": "models/text-embedding-004", "supportedGenerationMethods": ["embedContent"]}]}`))
		}
	}))
	t.Cleanup(server.Close)
	c := newClient(t, server.URL)

	models, err := c.ListModels(context.Background())
	assert.NoError(err)
	assert.Equal([]string{"", "page2"}, tokens)
	if assert.Len(models, 2) {
		assert.Equal("gemini-2.0-flash", models[0].Name)
		assert.True(models[0].Generate)
		assert.Equal("text-embedding-004", models[1].Name)
		assert.False(models[1].Generate)
	}
}

func Test_client_008(t *testing.T) {
	// Network errors do not reveal the API key
	assert := assert.New(t)
	c, err := gemini.New("SECRET-KEY-123", client.OptEndpoint("http://127.0.0.1:1/v1beta"))
	require.NoError(t, err)

	_, _, err = c.Generate(context.Background(), "gemini-2.0-flash", "prompt")
	assert.ErrorIs(err, popclip.ErrTransport)
	assert.NotContains(err.Error(), "SECRET-KEY-123")
	assert.NotEmpty(popclip.Detail(err))

	_, err = c.ListModels(context.Background())
	assert.ErrorIs(err, popclip.ErrTransport)
	assert.NotContains(err.Error(), "SECRET-KEY-123")
}

func Test_client_009(t *testing.T) {
	// A timeout does not reveal the API key
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(server.Close)
	c, err := gemini.New("SECRET-KEY-123", client.OptEndpoint(server.URL+"/v1beta"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, _, err = c.Generate(ctx, "gemini-2.0-flash", "prompt")
	assert.ErrorIs(err, popclip.ErrTransport)
	assert.True(strings.HasPrefix(popclip.Detail(err), "request timed out: "))
	assert.NotContains(err.Error(), "SECRET-KEY-123")
}
