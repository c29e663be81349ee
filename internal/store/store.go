// Package store holds CV profiles and chat history.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/cv-chat/internal/types"
)

// Store is the profile and chat history storage used by the HTTP layer.
// Lookups of unknown ids return nil with a nil error.
type Store interface {
	// GetProfile returns the profile with id, or the default profile when id is empty.
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	// CreateProfile stores a new profile with a fresh id and timestamps.
	CreateProfile(ctx context.Context, in types.ProfileInput) (*types.Profile, error)
	// UpdateProfile merges patch into the stored profile and refreshes UpdatedAt.
	UpdateProfile(ctx context.Context, id string, patch *types.ProfilePatch) (*types.Profile, error)
	// ListChatMessages returns a profile's chat history, oldest first.
	ListChatMessages(ctx context.Context, profileID string) ([]types.ChatMessage, error)
	// CreateChatMessage stores one chat exchange.
	CreateChatMessage(ctx context.Context, in types.ChatMessageInput) (*types.ChatMessage, error)
	// Close releases any resources held by the store.
	Close()
}

// ErrProfileNotFound indicates a profile id has no record
type ErrProfileNotFound struct {
	ProfileID string
}

func (e *ErrProfileNotFound) Error() string {
	return fmt.Sprintf("profile not found: %s", e.ProfileID)
}

// DefaultProfile returns the sample profile every store is seeded with.
func DefaultProfile(now time.Time) *types.Profile {
	return &types.Profile{
		ID:           types.DefaultProfileID,
		Name:         "John Anderson",
		Title:        "Senior Software Engineer",
		Location:     "San Francisco, CA",
		Bio:          "Experienced software engineer with 8+ years in full-stack development, specializing in React, Node.js, and cloud technologies. Passionate about building scalable applications and leading development teams.",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=150&h=150",
		Experience: []types.ExperienceEntry{
			{
				Title:       "Senior Software Engineer",
				Company:     "TechCorp",
				Period:      "2021-Present",
				Description: "Led development of React-based dashboard serving 50K+ users, implementing Redux for state management and optimizing performance with React.memo and lazy loading. Reduced application load time by 40% through code splitting.",
			},
			{
				Title:       "Full Stack Developer",
				Company:     "StartupXYZ",
				Period:      "2019-2021",
				Description: "Built and maintained multiple web applications using Node.js, Express, and React. Implemented CI/CD pipelines and automated testing strategies.",
			},
		},
		Skills:       []string{"React", "Node.js", "TypeScript", "Python", "AWS", "Docker", "PostgreSQL", "Redux", "Next.js", "Tailwind CSS"},
		Certificates: []string{"AWS Certified Developer", "React Professional Certificate", "Node.js Application Developer"},
		Languages: []types.LanguageEntry{
			{Name: "English", Level: "Native", Context: "Native speaker"},
			{Name: "Spanish", Level: "Conversational", Context: "Learned through travel and practice over 5 years"},
			{Name: "French", Level: "Basic", Context: "Self-taught using online resources"},
		},
		Memberships: []string{"IEEE Computer Society", "React Developer Community", "Node.js Foundation"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func resolveProfileID(id string) string {
	if id == "" {
		return types.DefaultProfileID
	}
	return id
}
