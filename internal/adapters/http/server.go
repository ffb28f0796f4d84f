// Package http exposes durable machine sessions over a JSON HTTP API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/mealy/pkg/domain"
	"github.com/aretw0/mealy/pkg/session"
)

// TransitionRequest is the body of POST /sessions/{id}/transition.
type TransitionRequest struct {
	Inputs []domain.Input `json:"inputs"`
	Trace  bool           `json:"trace,omitempty"`
}

// TransitionResponse reports the batch result. Output is the final step's
// output, or domain.NoOutput when no symbol was consumed. Steps is populated
// only for trace requests.
type TransitionResponse struct {
	Output   domain.Output `json:"output"`
	State    domain.State  `json:"state"`
	Consumed uint64        `json:"steps"`
	Steps    []domain.Step `json:"trace,omitempty"`
}

// ErrorResponse reports a halted batch with its partial progress.
type ErrorResponse struct {
	Error    string       `json:"error"`
	State    domain.State `json:"state"`
	Input    domain.Input `json:"input,omitempty"`
	Consumed int          `json:"consumed,omitempty"`
}

// Server routes session operations onto a session.Manager.
type Server struct {
	sessions *session.Manager
}

// NewHandler creates the HTTP handler for the session API.
func NewHandler(sessions *session.Manager) http.Handler {
	s := &Server{sessions: sessions}

	r := chi.NewRouter()
	r.Get("/sessions", s.listSessions)
	r.Route("/sessions/{sessionID}", func(r chi.Router) {
		r.Get("/", s.getSession)
		r.Delete("/", s.deleteSession)
		r.Post("/transition", s.transition)
	})
	return r
}

func (s *Server) transition(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var body TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp := TransitionResponse{Output: domain.NoOutput}
	var snap *domain.Snapshot
	var err error

	if body.Trace {
		resp.Steps, snap, err = s.sessions.Trace(r.Context(), sessionID, body.Inputs)
		if len(resp.Steps) > 0 {
			resp.Output = resp.Steps[len(resp.Steps)-1].Output
		}
	} else {
		resp.Output, snap, err = s.sessions.Transition(r.Context(), sessionID, body.Inputs)
	}

	var ute *domain.UndefinedTransitionError
	switch {
	case errors.As(err, &ute):
		// The session keeps its partial progress; report where it halted.
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:    "undefined_transition",
			State:    ute.State,
			Input:    ute.Input,
			Consumed: ute.Consumed,
		})
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp.State = snap.Current
	resp.Consumed = snap.Steps
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	snap, err := s.sessions.Peek(r.Context(), sessionID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := s.sessions.End(r.Context(), sessionID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.Sessions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": sessions})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
