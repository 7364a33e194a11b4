// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"

	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

// Phase is the lifecycle position of the current submission.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseFailed
	PhaseSucceeded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the phase as its lowercase name.
func (p Phase) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON accepts the lowercase name form produced by MarshalJSON.
func (p *Phase) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"idle"`:
		*p = PhaseIdle
	case `"loading"`:
		*p = PhaseLoading
	case `"failed"`:
		*p = PhaseFailed
	case `"succeeded"`:
		*p = PhaseSucceeded
	default:
		return fmt.Errorf("unknown phase %s", data)
	}
	return nil
}

// RequestState is the minimal state a view needs: the phase, the input
// that produced it, and either an error message or a result. A new
// submission resets the previous outcome before its own transitions
// begin.
type RequestState struct {
	Phase Phase  `json:"phase"`
	Input string `json:"input"`

	// Error is set only in PhaseFailed.
	Error string `json:"error,omitempty"`

	// Metadata and Summary are set only in PhaseSucceeded, and then
	// both are non-empty.
	Metadata *types.PaperMetadata `json:"metadata,omitempty"`
	Summary  string               `json:"summary,omitempty"`
}

// Result converts a settled state to a SummaryResult. Loading and idle
// states produce an empty failure variant.
func (s RequestState) Result() types.SummaryResult {
	switch s.Phase {
	case PhaseSucceeded:
		return types.SummaryResult{Metadata: s.Metadata, Summary: s.Summary}
	case PhaseFailed:
		return types.SummaryResult{Err: s.Error}
	default:
		return types.SummaryResult{}
	}
}
