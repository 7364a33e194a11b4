// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/history"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/summarize"
	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.response, s.err
}

const goodPayload = `{"success": true, "data": {"metadata": {"title": "T", "authors": ["A"], "abstract": "Ab", "url": "https://arxiv.org/abs/1234.56789", "published_date": "2023-01-17"}, "summary": "X"}}`

func newTestServer(t *testing.T, completer summarize.Completer, store *history.Store) *httptest.Server {
	t.Helper()
	var recorder summarize.Recorder
	if store != nil {
		recorder = store
	}
	session := summarize.NewSession(completer, "", recorder)
	ts := httptest.NewServer(NewRouter(NewHandler(session, store), nil))
	t.Cleanup(ts.Close)
	return ts
}

func postSummarize(t *testing.T, ts *httptest.Server, url string) (*http.Response, summarize.RequestState) {
	t.Helper()
	body := strings.NewReader(`{"url": ` + quote(url) + `}`)
	resp, err := http.Post(ts.URL+"/api/summarize", "application/json", body)
	if err != nil {
		t.Fatalf("POST /api/summarize: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var state summarize.RequestState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp, state
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestSummarizeEndpoint(t *testing.T) {
	stub := &stubCompleter{response: goodPayload}
	ts := newTestServer(t, stub, nil)

	resp, state := postSummarize(t, ts, "https://arxiv.org/abs/1234.56789")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if state.Phase != summarize.PhaseSucceeded {
		t.Errorf("phase = %v, want succeeded", state.Phase)
	}
	if state.Summary != "X" || state.Metadata == nil || state.Metadata.Title != "T" {
		t.Errorf("state = %+v", state)
	}
	if stub.calls != 1 {
		t.Errorf("agent calls = %d, want 1", stub.calls)
	}
}

func TestSummarizeEndpointInvalidInput(t *testing.T) {
	stub := &stubCompleter{response: goodPayload}
	ts := newTestServer(t, stub, nil)

	// Validation failures settle as failed states, not HTTP errors.
	resp, state := postSummarize(t, ts, "not a link")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if state.Phase != summarize.PhaseFailed || state.Error != summarize.MsgInvalidURL {
		t.Errorf("state = %+v", state)
	}
	if stub.calls != 0 {
		t.Errorf("agent calls = %d, want 0", stub.calls)
	}
}

func TestSummarizeEndpointBadBody(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{}, nil)

	resp, err := http.Post(ts.URL+"/api/summarize", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStateEndpoint(t *testing.T) {
	stub := &stubCompleter{response: goodPayload}
	ts := newTestServer(t, stub, nil)

	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var state map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	if state["phase"] != "idle" {
		t.Errorf("initial phase = %v, want idle", state["phase"])
	}

	postSummarize(t, ts, "https://arxiv.org/abs/1234.56789")

	resp2, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if err := json.NewDecoder(resp2.Body).Decode(&state); err != nil {
		t.Fatal(err)
	}
	if state["phase"] != "succeeded" {
		t.Errorf("settled phase = %v, want succeeded", state["phase"])
	}
}

func TestHistoryEndpoint(t *testing.T) {
	store, err := history.NewStore(types.HistoryConfig{
		Path: filepath.Join(t.TempDir(), "summaries.db"),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	stub := &stubCompleter{response: goodPayload}
	ts := newTestServer(t, stub, store)

	postSummarize(t, ts, "https://arxiv.org/abs/1234.56789")

	resp, err := http.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var entries []history.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ArxivID != "1234.56789" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestHistoryEndpointDisabled(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{}, nil)

	resp, err := http.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{}, nil)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, &stubCompleter{}, nil)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
