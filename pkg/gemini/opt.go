package gemini

import (
	"fmt"
	"strings"

	// Packages
	popclip "github.com/mutablelogic/go-popclip"
	opt "github.com/mutablelogic/go-popclip/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://ai.google.dev/gemini-api/docs/text-generation

// WithTemperature sets the temperature for the request (0.0 to 2.0).
// Lower values produce more deterministic output.
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(popclip.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1).
func WithMaxTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(popclip.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return opt.SetUint(opt.MaxTokensKey, value)
}

// WithTopK sets the top-K sampling parameter (minimum 1).
func WithTopK(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(popclip.ErrBadParameter.With("top_k must be at least 1"))
	}
	return opt.SetUint(opt.TopKKey, value)
}

// WithTopP sets the nucleus sampling parameter (0.0 to 1.0).
func WithTopP(value float64) opt.Opt {
	if value < 0 || value > 1 {
		return opt.Error(popclip.ErrBadParameter.With("top_p must be between 0.0 and 1.0"))
	}
	return opt.SetFloat64(opt.TopPKey, value)
}

// WithStopSequences sets custom stop sequences for the request.
func WithStopSequences(values ...string) opt.Opt {
	if len(values) == 0 {
		return opt.Error(popclip.ErrBadParameter.With("at least one stop sequence is required"))
	}
	return opt.AddString(opt.StopSequencesKey, values...)
}

// WithSafety sets the blocking threshold for a harm category. Multiple
// calls add settings for further categories.
func WithSafety(category, threshold string) opt.Opt {
	category = strings.TrimSpace(category)
	threshold = strings.TrimSpace(threshold)
	if category == "" || threshold == "" {
		return opt.Error(popclip.ErrBadParameter.With("safety category and threshold are required"))
	}
	if strings.Contains(category, "=") {
		return opt.Error(popclip.ErrBadParameter.Withf("invalid safety category %q", category))
	}
	return opt.AddString(opt.SafetyKey, fmt.Sprint(category, "=", threshold))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// safetySettingsFromOpts parses the category=threshold pairs
func safetySettingsFromOpts(options opt.Options) []*geminiSafetySetting {
	var result []*geminiSafetySetting
	for _, v := range options.GetStringArray(opt.SafetyKey) {
		if category, threshold, ok := strings.Cut(v, "="); ok {
			result = append(result, &geminiSafetySetting{
				Category:  category,
				Threshold: threshold,
			})
		}
	}
	return result
}
