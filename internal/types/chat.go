package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ChatMessage is one stored question/answer exchange about a profile
type ChatMessage struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Section   string    `json:"section,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"isUser"`
}

// ChatMessageInput is the payload for storing a chat exchange
type ChatMessageInput struct {
	ProfileID string `json:"profileId" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Response  string `json:"response"`
	Section   string `json:"section,omitempty"`
}

// ChatRequest is the body of a chat call. ProfileID defaults to the default profile.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	Section   string `json:"section,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

// ChatResponse is the answer returned to the chat client
type ChatResponse struct {
	Response     string `json:"response"`
	ResponseHTML string `json:"responseHtml,omitempty"`
}

// ParseRequest is the body of a markdown import call
type ParseRequest struct {
	MarkdownContent string `json:"markdownContent" validate:"required"`
	ProfileID       string `json:"profileId,omitempty"`
}

// Validate validates the ChatMessageInput using the validator.
func (in *ChatMessageInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
