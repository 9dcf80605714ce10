package popclip

import (
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Input is the text selected by the user in the host application
type Input struct {
	Text string `json:"text" yaml:"text"`
}

// Result is the outcome of a single action invocation. Exactly one of
// Text or Err is meaningful.
type Result struct {
	Text string
	Err  error
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	msgNoInput    = "Error: no input text."
	msgNoAPIKey   = "Error: missing API key. Please set it in the extension options."
	msgGenerating = "Error generating content: "
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Ok returns a successful result
func Ok(text string) Result {
	return Result{Text: text}
}

// Fail returns a failed result
func Fail(err error) Result {
	if err == nil {
		err = ErrTransport.With("unknown error")
	}
	return Result{Err: err}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Failed returns true if the result carries an error
func (r Result) Failed() bool {
	return r.Err != nil
}

// Reason returns the error category, or ErrSuccess
func (r Result) Reason() Err {
	return Category(r.Err)
}

// String flattens the result into the text pasted by the host
func (r Result) String() string {
	if r.Err == nil {
		return r.Text
	}
	switch r.Reason() {
	case ErrMissingInput:
		return msgNoInput
	case ErrMissingCredential:
		return msgNoAPIKey
	case ErrBlocked:
		return msgGenerating + "Generation failed: " + Detail(r.Err)
	case ErrEmptyOutput:
		return msgGenerating + "Empty response from model."
	}
	detail := strings.TrimSpace(Detail(r.Err))
	if detail == "" {
		detail = r.Reason().Error()
	}
	return msgGenerating + detail
}
