// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonx parses JSON out of model-generated text. Models wrap
// payloads in markdown fences, prepend prose, or truncate output, so
// parsing is best-effort: strict first, then a repair pass, then a
// caller-supplied fallback. Parse never returns an error.
package jsonx

import (
	"encoding/json"
	"strings"
)

// Parse decodes raw into a value of type T. On any failure it returns
// fallback. The repair pass extracts the first balanced {...} block
// from the text and retries, which recovers payloads surrounded by
// prose or fenced code blocks.
func Parse[T any](raw string, fallback T) T {
	text := stripFences(raw)

	var v T
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v
	}

	if block := firstObject(text); block != "" {
		var v T
		if err := json.Unmarshal([]byte(block), &v); err == nil {
			return v
		}
	}

	return fallback
}

// stripFences removes a surrounding markdown code fence if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// firstObject returns the first balanced top-level JSON object in s,
// or "" if none exists. Braces inside string literals are skipped.
func firstObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
