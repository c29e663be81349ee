package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-chat/internal/types"
)

// MemoryStore keeps profiles and chat messages in process memory.
// Values handed out are copies; callers never share the stored records.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*types.Profile
	messages map[string][]types.ChatMessage // profile ID -> messages
	now      func() time.Time
}

// NewMemoryStore creates a store seeded with the default profile.
func NewMemoryStore() *MemoryStore {
	return newMemoryStore(time.Now)
}

func newMemoryStore(now func() time.Time) *MemoryStore {
	s := &MemoryStore{
		profiles: make(map[string]*types.Profile),
		messages: make(map[string][]types.ChatMessage),
		now:      now,
	}
	def := DefaultProfile(s.now())
	s.profiles[def.ID] = def
	return s
}

// GetProfile returns a copy of the profile, or nil when it does not exist.
func (s *MemoryStore) GetProfile(_ context.Context, id string) (*types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profiles[resolveProfileID(id)].Clone(), nil
}

// CreateProfile stores a new profile under a random UUID.
func (s *MemoryStore) CreateProfile(_ context.Context, in types.ProfileInput) (*types.Profile, error) {
	profile := in.NewProfile()
	profile.ID = uuid.NewString()
	profile.CreatedAt = s.now()
	profile.UpdatedAt = profile.CreatedAt

	s.mu.Lock()
	s.profiles[profile.ID] = profile
	s.mu.Unlock()

	return profile.Clone(), nil
}

// UpdateProfile merges patch into an existing profile.
func (s *MemoryStore) UpdateProfile(_ context.Context, id string, patch *types.ProfilePatch) (*types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}

	updated := existing.Clone()
	updated.Apply(patch)
	updated.UpdatedAt = s.now()
	s.profiles[id] = updated

	return updated.Clone(), nil
}

// ListChatMessages returns the profile's messages ordered by timestamp.
func (s *MemoryStore) ListChatMessages(_ context.Context, profileID string) ([]types.ChatMessage, error) {
	s.mu.RLock()
	messages := append([]types.ChatMessage{}, s.messages[profileID]...)
	s.mu.RUnlock()

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

// CreateChatMessage appends a chat exchange to the profile's history.
func (s *MemoryStore) CreateChatMessage(_ context.Context, in types.ChatMessageInput) (*types.ChatMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chat message: %w", err)
	}

	msg := types.ChatMessage{
		ID:        uuid.NewString(),
		ProfileID: in.ProfileID,
		Message:   in.Message,
		Response:  in.Response,
		Section:   in.Section,
		Timestamp: s.now(),
		IsUser:    false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[in.ProfileID]; !ok {
		return nil, &ErrProfileNotFound{ProfileID: in.ProfileID}
	}
	s.messages[in.ProfileID] = append(s.messages[in.ProfileID], msg)

	return &msg, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() {}
