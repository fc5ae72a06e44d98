package parse

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse_StrictJSON(t *testing.T) {
	raw := `{"Python": ["Q1", "Q2", "Q3"], "Django": ["Q1", "Q2", "Q3"]}`

	m, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(m))
	}

	var direct map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &direct); err != nil {
		t.Fatal(err)
	}
	for k := range direct {
		if _, ok := m[k]; !ok {
			t.Errorf("missing key %q", k)
		}
	}
}

func TestParse_FencedJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{
			name: "fence only",
			raw:  "```json\n{\"Python\": \"Expert\"}\n```",
		},
		{
			name: "leading prose",
			raw:  "Here are the results:\n```json\n{\"Python\": \"Expert\"}\n```",
		},
		{
			name: "prose and trailing text",
			raw:  "Sure!\n```json\n{\"Python\": \"Expert\"}\n```\nLet me know if you need more.",
		},
		{
			name: "fence without language tag",
			raw:  "```\n{\"Python\": \"Expert\"}\n```",
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n```json\n{\"Python\": \"Expert\"}\n```  \n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Parse(tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var level string
			if err := json.Unmarshal(m["Python"], &level); err != nil {
				t.Fatalf("decode value: %v", err)
			}
			if level != "Expert" {
				t.Errorf("expected Expert, got %q", level)
			}
		})
	}
}

func TestParse_MalformedPreservesRaw(t *testing.T) {
	cases := []string{
		"I cannot generate questions right now.",
		"```\nnot json either\n```",
		"{broken json",
		"   ",
	}

	for _, raw := range cases {
		_, err := Parse(raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}

		var malformed *MalformedOutputError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedOutputError, got %T", err)
		}

		// The failure payload must be the original string, unchanged.
		if malformed.Raw != raw {
			t.Errorf("raw payload changed: %q != %q", malformed.Raw, raw)
		}
	}
}

func TestParse_JSONArrayIsNotAMapping(t *testing.T) {
	_, err := Parse(`["a", "b"]`)

	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedOutputError, got %v", err)
	}
}

func TestDecode_TypedTarget(t *testing.T) {
	raw := "```json\n{\"Python\": [\"Q1\", \"Q2\", \"Q3\"]}\n```"

	var qs map[string][]string
	if err := Decode(raw, &qs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(qs["Python"]) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs["Python"]))
	}
}

func TestDecode_PrefersDirectDecode(t *testing.T) {
	// Valid JSON that happens to contain backticks in a value must be
	// decoded as-is, never split on the fence.
	raw := `{"Python": "use ` + "```" + ` for code blocks"}`

	var m map[string]string
	if err := Decode(raw, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["Python"] == "" {
		t.Error("expected value to survive direct decode")
	}
}
