// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import "testing"

func TestValidateAndExtractID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantID    string
	}{
		// Positive: canonical forms.
		{"https abs", "https://arxiv.org/abs/2301.07041", true, "2301.07041"},
		{"http abs", "http://arxiv.org/abs/2301.07041", true, "2301.07041"},
		{"no scheme", "arxiv.org/abs/2301.07041", true, "2301.07041"},
		{"www prefix", "https://www.arxiv.org/abs/2301.07041", true, "2301.07041"},
		{"pdf path", "https://arxiv.org/pdf/2301.07041", true, "2301.07041"},
		{"version suffix", "https://arxiv.org/abs/2301.07041v2", true, "2301.07041v2"},
		{"old-style numeric id", "https://arxiv.org/abs/9901001", true, "9901001"},
		{"example from form hint", "https://arxiv.org/abs/1234.56789", true, "1234.56789"},

		// Positive: unanchored matching.
		{"embedded in sentence", "see https://arxiv.org/abs/2301.07041 for details", true, "2301.07041"},
		{"first match wins", "arxiv.org/abs/1111.22222 then arxiv.org/abs/3333.44444", true, "1111.22222"},
		{"trailing junk", "https://arxiv.org/abs/2301.07041?context=cs", true, "2301.07041"},

		// Negative: not an arXiv link or malformed identifier.
		{"empty", "", false, ""},
		{"bare id", "2301.07041", false, ""},
		{"wrong host", "https://example.org/abs/2301.07041", false, ""},
		{"wrong path", "https://arxiv.org/paper/2301.07041", false, ""},
		{"no digits", "https://arxiv.org/abs/vNone", false, ""},
		{"listing page", "https://arxiv.org/list/cs.AI/recent", false, ""},
		{"plain text", "attention is all you need", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.input); got != tt.wantValid {
				t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.wantValid)
			}
			if got := ExtractID(tt.input); got != tt.wantID {
				t.Errorf("ExtractID(%q) = %q, want %q", tt.input, got, tt.wantID)
			}
		})
	}
}

func TestValidateDoesNotTrim(t *testing.T) {
	// Trimming is the orchestrator's job, but surrounding whitespace
	// does not break unanchored matching either.
	if !Validate("  https://arxiv.org/abs/2301.07041  ") {
		t.Error("Validate should match a link surrounded by whitespace")
	}
}

func TestCanonicalURLs(t *testing.T) {
	if got := AbsURL("2301.07041"); got != "https://arxiv.org/abs/2301.07041" {
		t.Errorf("AbsURL = %q", got)
	}
	if got := PDFURL("2301.07041v2"); got != "https://arxiv.org/pdf/2301.07041v2" {
		t.Errorf("PDFURL = %q", got)
	}
}
