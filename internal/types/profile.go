// Package types provides type definitions for structured data used throughout the cv-chat system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultProfileID is the identifier of the profile served when no id is requested.
const DefaultProfileID = "default-profile"

// ExperienceEntry is one position in the work history
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// LanguageEntry is one spoken language with a free-form proficiency label
type LanguageEntry struct {
	Name    string `json:"name"`
	Level   string `json:"level"`
	Context string `json:"context"`
}

// Profile is a stored CV profile
type Profile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Location     string            `json:"location"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profileImage,omitempty"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []string          `json:"skills"`
	Certificates []string          `json:"certificates"`
	Languages    []LanguageEntry   `json:"languages"`
	Memberships  []string          `json:"memberships"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ProfilePatch carries the subset of profile fields to merge into a stored record.
// A nil field is left untouched; a non-nil empty slice clears the list.
type ProfilePatch struct {
	Name         *string           `json:"name,omitempty"`
	Title        *string           `json:"title,omitempty"`
	Location     *string           `json:"location,omitempty"`
	Bio          *string           `json:"bio,omitempty"`
	Experience   []ExperienceEntry `json:"experience"`
	Skills       []string          `json:"skills"`
	Certificates []string          `json:"certificates"`
	Languages    []LanguageEntry   `json:"languages"`
	Memberships  []string          `json:"memberships"`
}

// IsEmpty reports whether the patch sets no field at all.
func (p *ProfilePatch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Name == nil && p.Title == nil && p.Location == nil && p.Bio == nil &&
		p.Experience == nil && p.Skills == nil && p.Certificates == nil &&
		p.Languages == nil && p.Memberships == nil
}

// Apply merges the set fields of patch into the profile.
// Slices are copied so the profile never aliases the patch.
func (p *Profile) Apply(patch *ProfilePatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Bio != nil {
		p.Bio = *patch.Bio
	}
	if patch.Experience != nil {
		p.Experience = append([]ExperienceEntry{}, patch.Experience...)
	}
	if patch.Skills != nil {
		p.Skills = append([]string{}, patch.Skills...)
	}
	if patch.Certificates != nil {
		p.Certificates = append([]string{}, patch.Certificates...)
	}
	if patch.Languages != nil {
		p.Languages = append([]LanguageEntry{}, patch.Languages...)
	}
	if patch.Memberships != nil {
		p.Memberships = append([]string{}, patch.Memberships...)
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Experience = append([]ExperienceEntry{}, p.Experience...)
	c.Skills = append([]string{}, p.Skills...)
	c.Certificates = append([]string{}, p.Certificates...)
	c.Languages = append([]LanguageEntry{}, p.Languages...)
	c.Memberships = append([]string{}, p.Memberships...)
	return &c
}

// ProfileInput is the payload for creating a profile
type ProfileInput struct {
	Name         string            `json:"name" validate:"required,min=1"`
	Title        string            `json:"title" validate:"required,min=1"`
	Location     string            `json:"location"`
	Bio          string            `json:"bio"`
	ProfileImage string            `json:"profileImage,omitempty" validate:"omitempty,url"`
	Experience   []ExperienceEntry `json:"experience" validate:"dive"`
	Skills       []string          `json:"skills"`
	Certificates []string          `json:"certificates"`
	Languages    []LanguageEntry   `json:"languages" validate:"dive"`
	Memberships  []string          `json:"memberships"`
}

// Validate validates the ProfileInput using the validator.
func (in *ProfileInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// NewProfile builds a profile record from input; identity and timestamps are left to the store.
func (in *ProfileInput) NewProfile() *Profile {
	p := &Profile{
		Name:         in.Name,
		Title:        in.Title,
		Location:     in.Location,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
	}
	p.Apply(&ProfilePatch{
		Experience:   nonNil(in.Experience),
		Skills:       nonNil(in.Skills),
		Certificates: nonNil(in.Certificates),
		Languages:    nonNil(in.Languages),
		Memberships:  nonNil(in.Memberships),
	})
	return p
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
