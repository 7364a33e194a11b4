// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv validates arXiv paper links and extracts normalized
// identifiers, and fetches paper metadata from the arXiv Atom API.
package arxiv

import "regexp"

// linkPattern matches arXiv paper links anywhere in a string:
// "https://arxiv.org/abs/2301.07041", "arxiv.org/pdf/2301.07041v2",
// "http://www.arxiv.org/abs/1234.56789". The capture group is the
// identifier: digits, an optional dot-separated segment, and an
// optional version suffix.
var linkPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?arxiv\.org/(?:abs|pdf)/(\d+(?:\.\d+)?(?:v\d+)?)`)

// Validate reports whether raw contains a recognized arXiv paper link.
// Surrounding whitespace is not trimmed here; callers trim before
// validating.
func Validate(raw string) bool {
	return linkPattern.MatchString(raw)
}

// ExtractID returns the identifier from the first arXiv link in raw,
// or "" if none matches. Callers must Validate first; the empty
// result is a degraded value, not an error.
func ExtractID(raw string) string {
	m := linkPattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return m[1]
}

// AbsURL returns the canonical abstract page URL for an identifier.
func AbsURL(id string) string {
	return "https://arxiv.org/abs/" + id
}

// PDFURL returns the canonical PDF URL for an identifier.
func PDFURL(id string) string {
	return "https://arxiv.org/pdf/" + id
}
