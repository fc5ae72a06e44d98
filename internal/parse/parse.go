// Package parse recovers structured JSON from raw model output.
//
// Models commonly wrap JSON in explanatory prose or markdown code
// fences despite explicit instructions not to, so decoding is a
// two-stage affair: strict decode first, fence extraction second.
// When both fail the caller gets a typed error that preserves the raw
// output verbatim for operator inspection.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedOutputError reports that raw model output could not be
// decoded as JSON in either direct or fenced form. Raw is the original
// model output, untransformed and untruncated.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// Parse decodes raw model output into a JSON object mapping. The
// returned error, when non-nil, is always a *MalformedOutputError
// carrying raw verbatim.
func Parse(raw string) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := Decode(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Decode decodes raw model output into v with the same two-stage
// recovery as Parse:
//
//  1. strict JSON decode of raw as-is;
//  2. otherwise, trim whitespace, take the last code-fenced fragment,
//     and strict-decode that.
//
// A nil return means v holds the decoded value. A non-nil return is
// always a *MalformedOutputError.
func Decode(raw string, v any) error {
	directErr := json.Unmarshal([]byte(raw), v)
	if directErr == nil {
		return nil
	}

	for _, fragment := range fencedFragments(raw) {
		if err := json.Unmarshal([]byte(fragment), v); err == nil {
			return nil
		}
	}

	return &MalformedOutputError{Raw: raw, Err: directErr}
}

// fencedFragments strips surrounding whitespace, splits raw on
// triple-backtick delimiters, and returns the non-empty fragments in
// last-to-first order, each with any leading language tag (```json)
// removed. Last-first order matters: trailing prose after the closing
// fence is common, so the fenced body usually sits just before the
// final fragment.
func fencedFragments(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "```") {
		return nil
	}

	parts := strings.Split(trimmed, "```")
	fragments := make([]string, 0, len(parts))
	for i := len(parts) - 1; i >= 0; i-- {
		fragment := strings.TrimSpace(parts[i])
		fragment = strings.TrimPrefix(fragment, "json")
		fragment = strings.TrimSpace(fragment)
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}
