// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/history"
	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/summarize"
)

// Handler bridges HTTP requests to the summarization session.
type Handler struct {
	session *summarize.Session
	store   *history.Store // nil disables /api/history
}

// NewHandler builds a handler. store may be nil.
func NewHandler(session *summarize.Session, store *history.Store) *Handler {
	return &Handler{session: session, store: store}
}

// Index renders the single-page form with the current state.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, h.session.Snapshot()); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// summarizeRequest is the JSON body of POST /api/summarize.
type summarizeRequest struct {
	URL string `json:"url"`
}

// Summarize runs one submission cycle and answers with the settled
// state. Overlapping submissions are rejected with 409; the in-flight
// request keeps running.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	h.session.SetInput(req.URL)
	state, err := h.session.Submit(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, summarize.ErrRequestInFlight) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// State answers with a snapshot of the current request state.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// History lists recently recorded summaries.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusNotFound, "history is disabled")
		return
	}
	entries, err := h.store.List(r.Context(), 0)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
