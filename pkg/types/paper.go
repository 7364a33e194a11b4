// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper summarizer:
// paper metadata, the agent response payload, and the summary result.
package types

// PaperMetadata holds the bibliographic fields the summarization agent
// returns for one paper. Immutable once received; each submission owns
// its own copy.
type PaperMetadata struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is the canonical link to the paper.
	URL string `json:"url" yaml:"url"`

	// PublishedDate is the publication date as reported by the source
	// (a date-like string, not normalized).
	PublishedDate string `json:"published_date" yaml:"published_date"`
}

// AgentPayload is the structured shape expected inside the agent's raw
// text response.
type AgentPayload struct {
	Success bool      `json:"success"`
	Data    AgentData `json:"data"`
}

// AgentData carries the payload body. Metadata and Summary are both
// required for a usable success; Error carries the agent's own failure
// message when Success is false.
type AgentData struct {
	Metadata *PaperMetadata `json:"metadata,omitempty"`
	Summary  string         `json:"summary,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// SummaryResult is the settled outcome of one submission: either a
// success carrying metadata and summary, or a failure carrying a
// user-facing message. Exactly one variant is populated.
type SummaryResult struct {
	Metadata *PaperMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Summary  string         `json:"summary,omitempty" yaml:"summary,omitempty"`
	Err      string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the result is the success variant.
func (r SummaryResult) OK() bool {
	return r.Err == "" && r.Metadata != nil && r.Summary != ""
}
