package web

// handlers.go implements the directory API contract: every API response
// is status 200 with a well-formed JSON body. Validation problems and
// source faults both surface as an "error" field in the envelope, never
// as a transport-level failure.

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/expofair/directory/internal/directory"
	"github.com/expofair/directory/internal/logging"
)

// invalidLetterMessage is the exact payload error for a bad letter param.
const invalidLetterMessage = "Invalid letter parameter. Must be A-Z."

// errorEnvelope is the recovered-error response body. Exhibitors is
// always present (and empty) so consumers can iterate unconditionally.
type errorEnvelope struct {
	Error      string                `json:"error"`
	Exhibitors []directory.Exhibitor `json:"exhibitors"`
}

func errEnvelope(message string) errorEnvelope {
	return errorEnvelope{Error: message, Exhibitors: []directory.Exhibitor{}}
}

// mutationResponse is the envelope for a successful POST.
type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// mutationError is the envelope for a rejected or failed POST.
type mutationError struct {
	Error string `json:"error"`
}

// handleDirectoryQuery answers GET /api/directory.
//
// Query parameters:
//
//	type   — exhibitors (default), team, partners; case-insensitive.
//	         Unrecognized values fall back to exhibitors.
//	letter — optional single letter A-Z, exhibitors only.
func (s *Server) handleDirectoryQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	switch strings.ToLower(strings.TrimSpace(q.Get("type"))) {
	case "team":
		res, err := s.service.Team(ctx)
		if err != nil {
			s.respondFault(w, r, err)
			return
		}
		writeJSON(w, res)

	case "partners":
		res, err := s.service.Partners(ctx)
		if err != nil {
			s.respondFault(w, r, err)
			return
		}
		writeJSON(w, res)

	default:
		if q.Has("letter") {
			letter := strings.ToUpper(strings.TrimSpace(q.Get("letter")))
			if !directory.ValidLetter(letter) {
				writeJSON(w, errEnvelope(invalidLetterMessage))
				return
			}
			res, err := s.service.ExhibitorsByLetter(ctx, letter)
			if err != nil {
				s.respondFault(w, r, err)
				return
			}
			writeJSON(w, res)
			return
		}

		res, err := s.service.ExhibitorsGrouped(ctx)
		if err != nil {
			s.respondFault(w, r, err)
			return
		}
		writeJSON(w, res)
	}
}

// handleDirectoryMutation answers POST /api/directory.
// Body: {"action": "add", "email": ..., "company": ..., "personName": ...}
func (s *Server) handleDirectoryMutation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action     string `json:"action"`
		Email      string `json:"email"`
		Company    string `json:"company"`
		PersonName string `json:"personName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, mutationError{Error: "Invalid request body: " + err.Error()})
		return
	}

	if req.Action != "add" {
		writeJSON(w, mutationError{Error: "Invalid action"})
		return
	}

	if err := s.service.AddExhibitor(r.Context(), req.Email, req.Company, req.PersonName); err != nil {
		logging.FromContext(r.Context()).Error("append failed", "error", err)
		writeJSON(w, mutationError{Error: err.Error()})
		return
	}

	writeJSON(w, mutationResponse{Success: true, Message: "Exhibitor added successfully"})
}

// respondFault converts a source fault into the recovered JSON error
// envelope. The response is still status 200; only the payload carries
// the error.
func (s *Server) respondFault(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("directory query failed",
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, errEnvelope(err.Error()))
}

// handleHealth reports process liveness. The row source is deliberately
// not probed here; source faults surface per request instead.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleIndex serves the directory landing page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
