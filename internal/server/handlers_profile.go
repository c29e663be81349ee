package server

import (
	"log"
	"net/http"

	"github.com/jonathan/cv-chat/internal/types"
)

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		log.Printf("Get profile error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get CV profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "CV profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var in types.ProfileInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), validationMessage(err))
		return
	}

	profile, err := s.store.CreateProfile(r.Context(), in)
	if err != nil {
		log.Printf("Create profile error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create CV profile")
		return
	}

	s.jsonResponse(w, http.StatusCreated, profile)
}

func (s *Server) handleListSections(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.CVSections())
}

// handleParseCV parses markdown and merges the result into a stored profile.
func (s *Server) handleParseCV(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Markdown content is required")
		return
	}

	patch, err := s.parse(req.MarkdownContent)
	if err != nil {
		log.Printf("CV parsing error: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to parse CV content")
		return
	}

	profileID := req.ProfileID
	if profileID == "" {
		profileID = types.DefaultProfileID
	}

	updated, err := s.store.UpdateProfile(r.Context(), profileID, patch)
	if err != nil {
		log.Printf("CV update error: %v", err)
		s.errorResponse(w, HTTPStatus(err), "Failed to update CV profile")
		return
	}
	if updated == nil {
		s.errorResponse(w, http.StatusNotFound, "Failed to update CV profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
