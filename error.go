package popclip

import (
	"errors"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrMissingInput
	ErrMissingCredential
	ErrBlocked
	ErrEmptyOutput
	ErrTransport
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrMissingInput:
		return "no input text"
	case ErrMissingCredential:
		return "missing API key"
	case ErrBlocked:
		return "generation failed"
	case ErrEmptyOutput:
		return "empty response from model"
	case ErrTransport:
		return "transport error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return &detailErr{code: e, detail: fmt.Sprint(args...)}
}

func (e Err) Withf(format string, args ...interface{}) error {
	return &detailErr{code: e, detail: fmt.Sprintf(format, args...)}
}

// Category returns the Err code wrapped by err, or ErrSuccess when err is nil.
// Errors which do not wrap an Err are reported as ErrTransport.
func Category(err error) Err {
	if err == nil {
		return ErrSuccess
	}
	var code Err
	if errors.As(err, &code) {
		return code
	}
	return ErrTransport
}

// Detail returns the detail string attached to err with With or Withf,
// or the error message when there is none.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var d *detailErr
	if errors.As(err, &d) {
		return d.detail
	}
	return err.Error()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE TYPES

// detailErr keeps the category and detail apart so the detail can be
// displayed without the category prefix
type detailErr struct {
	code   Err
	detail string
}

func (d *detailErr) Error() string {
	return fmt.Sprintf("%v: %s", d.code, d.detail)
}

func (d *detailErr) Unwrap() error {
	return d.code
}
