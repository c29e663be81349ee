package server

import (
	"log"
	"net/http"

	"github.com/jonathan/cv-chat/internal/chat"
	"github.com/jonathan/cv-chat/internal/types"
)

// ---------------------------------------------------------------------
// Chat Handlers
// ---------------------------------------------------------------------

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), "Message is required")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	ctx := r.Context()
	profile, err := s.store.GetProfile(ctx, req.ProfileID)
	if err != nil {
		log.Printf("Chat error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process chat message")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "CV profile not found")
		return
	}

	answer := s.chat.Respond(ctx, req.Message, profile, req.Section)

	if _, err := s.store.CreateChatMessage(ctx, types.ChatMessageInput{
		ProfileID: profile.ID,
		Message:   req.Message,
		Response:  answer,
		Section:   req.Section,
	}); err != nil {
		log.Printf("Chat error: failed to store message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process chat message")
		return
	}

	resp := types.ChatResponse{Response: answer}
	if s.renderer != nil {
		html, err := s.renderer.Render(answer)
		if err != nil {
			log.Printf("Chat error: failed to render answer: %v", err)
		} else {
			resp.ResponseHTML = html
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.ListChatMessages(r.Context(), r.PathValue("profileId"))
	if err != nil {
		log.Printf("Chat history error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get chat history")
		return
	}
	if messages == nil {
		messages = []types.ChatMessage{}
	}

	s.jsonResponse(w, http.StatusOK, messages)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	profile, err := s.store.GetProfile(r.Context(), r.URL.Query().Get("profileId"))
	if err != nil {
		log.Printf("Suggestions error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate suggestions")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "CV profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, chat.Suggestions(r.PathValue("section"), profile))
}
