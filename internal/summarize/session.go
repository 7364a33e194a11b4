// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize drives the request lifecycle for one summarization
// form: validate the submitted link, call the remote agent once, and
// classify the outcome into a request state the view renders.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/arxiv"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/jsonx"
	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

// DefaultAgentID selects the arXiv summarizer agent configuration on
// the inference service. Overridable via config; opaque otherwise.
const DefaultAgentID = "6889b7dbb8cbd6d5ba4a5187"

// User-facing messages. One of these is surfaced verbatim for every
// failed submission.
const (
	MsgEmptyInput       = "Please enter an arXiv URL"
	MsgInvalidURL       = "Please enter a valid arXiv URL (e.g., https://arxiv.org/abs/1234.56789)"
	MsgParseFailure     = "Failed to parse response"
	MsgSummarizeFailure = "Failed to summarize paper"
	MsgRequestError     = "An error occurred while processing the paper. Please try again."
)

// ErrRequestInFlight is returned by Submit while a prior submission has
// not settled. The in-flight request is not disturbed.
var ErrRequestInFlight = errors.New("a summarization request is already in flight")

// Completer is the remote summarization collaborator: one message to
// one agent, raw text back.
type Completer interface {
	Complete(ctx context.Context, agentID, message string) (string, error)
}

// Recorder persists settled successful summaries. Recording is
// best-effort and never alters the request state.
type Recorder interface {
	Record(ctx context.Context, arxivID string, md types.PaperMetadata, summary string) error
}

// Session holds the state of one summarization form and serializes its
// submissions. At most one agent call is in flight at a time; Submit
// rejects overlapping calls rather than queueing or cancelling.
type Session struct {
	completer Completer
	agentID   string
	recorder  Recorder // optional

	mu       sync.Mutex
	state    RequestState
	inFlight bool
}

// NewSession builds a session starting in the idle state. recorder may
// be nil to disable history.
func NewSession(completer Completer, agentID string, recorder Recorder) *Session {
	if agentID == "" {
		agentID = DefaultAgentID
	}
	return &Session{
		completer: completer,
		agentID:   agentID,
		recorder:  recorder,
		state:     RequestState{Phase: PhaseIdle},
	}
}

// Snapshot returns a copy of the current request state.
func (s *Session) Snapshot() RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetInput records the current free-text input without validating it.
func (s *Session) SetInput(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Input = raw
}

// BuildPrompt returns the message sent to the agent for one identifier.
func BuildPrompt(id string) string {
	return "Summarize this arXiv paper: " + id
}

// Submit runs one full submission cycle and returns the settled state.
// Invalid input settles immediately without a network call; valid input
// transitions through loading, calls the agent exactly once, and
// settles as succeeded or failed. The only error return is
// ErrRequestInFlight; every other outcome is a state transition.
func (s *Session) Submit(ctx context.Context, rawInput string) (RequestState, error) {
	trimmed := strings.TrimSpace(rawInput)

	s.mu.Lock()
	if s.inFlight {
		state := s.state
		s.mu.Unlock()
		return state, ErrRequestInFlight
	}

	s.state = RequestState{Input: rawInput}

	if trimmed == "" {
		s.state.Phase = PhaseFailed
		s.state.Error = MsgEmptyInput
		state := s.state
		s.mu.Unlock()
		return state, nil
	}

	if !arxiv.Validate(trimmed) {
		s.state.Phase = PhaseFailed
		s.state.Error = MsgInvalidURL
		state := s.state
		s.mu.Unlock()
		return state, nil
	}

	id := arxiv.ExtractID(trimmed)
	s.state.Phase = PhaseLoading
	s.inFlight = true
	s.mu.Unlock()

	// The agent call runs outside the lock so snapshots stay available
	// while loading.
	result := s.classify(s.completer.Complete(ctx, s.agentID, BuildPrompt(id)))

	s.mu.Lock()
	s.inFlight = false
	s.state.Phase = PhaseFailed
	s.state.Error = result.Err
	if result.OK() {
		s.state.Phase = PhaseSucceeded
		s.state.Error = ""
		s.state.Metadata = result.Metadata
		s.state.Summary = result.Summary
	}
	state := s.state
	s.mu.Unlock()

	if state.Phase == PhaseSucceeded && s.recorder != nil {
		if err := s.recorder.Record(ctx, id, *state.Metadata, state.Summary); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording summary for %s: %v\n", id, err)
		}
	}

	return state, nil
}

// classify interprets the raw agent reply. A transport error maps to
// the generic request-error message; everything else is decided by the
// tolerantly parsed payload.
func (s *Session) classify(raw string, err error) types.SummaryResult {
	if err != nil {
		return types.SummaryResult{Err: MsgRequestError}
	}

	fallback := types.AgentPayload{Data: types.AgentData{Error: MsgParseFailure}}
	payload := jsonx.Parse(raw, fallback)

	if payload.Success && payload.Data.Metadata != nil && payload.Data.Summary != "" {
		return types.SummaryResult{Metadata: payload.Data.Metadata, Summary: payload.Data.Summary}
	}

	msg := payload.Data.Error
	if msg == "" {
		msg = MsgSummarizeFailure
	}
	return types.SummaryResult{Err: msg}
}
