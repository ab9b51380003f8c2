// Copyright 2026 Silvanic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/silvanic/handbook/core"
)

// errorResponse is the JSON body for every non-200 response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("error encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message, details string) {
	s.writeJSON(w, status, errorResponse{Error: message, Details: details})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	// Query is decoded loosely: a missing, null or non-string query is a
	// validation failure, not a malformed request.
	var body struct {
		Query any `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "Valid query string is required", "")
		return
	}
	query, ok := body.Query.(string)
	if !ok {
		s.writeError(w, http.StatusBadRequest, "Valid query string is required", "")
		return
	}

	results, err := s.service.Search(r.Context(), query)
	if err != nil {
		s.writeSearchError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, results)
}

// writeSearchError maps search failures to the HTTP error taxonomy:
// validation to 400, readiness to 503 with a details field naming the
// blocker, anything else to 500 with details suppressed in production.
func (s *Server) writeSearchError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidQuery):
		s.writeError(w, http.StatusBadRequest, "Valid query string is required", "")
	case errors.Is(err, core.ErrDataNotLoaded), errors.Is(err, core.ErrSearchNotReady):
		s.writeError(w, http.StatusServiceUnavailable, "Search service is not ready", err.Error())
	default:
		s.logger.Error("search failed", "err", err)
		details := ""
		if !s.cfg.Production {
			details = err.Error()
		}
		s.writeError(w, http.StatusInternalServerError, "An error occurred during search", details)
	}
}

func (s *Server) handleData(w http.ResponseWriter, _ *http.Request) {
	knowledge, err := s.service.KnowledgeBase()
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "Search service is not ready", err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{s.cfg.RootKey: knowledge})
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, "Endpoint not found", "")
}
