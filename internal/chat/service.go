// Package chat answers questions about a CV profile, through an LLM when one
// is configured and with canned answers otherwise.
package chat

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jonathan/cv-chat/internal/llm"
	"github.com/jonathan/cv-chat/internal/prompts"
	"github.com/jonathan/cv-chat/internal/types"
)

const (
	chatPrompts     = "chat.json"
	fallbackPrompts = "fallback.json"

	maxFallbackSkills = 5
)

// Service produces chat answers for a profile
type Service struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewService creates a chat service. A nil client makes every answer a fallback.
func NewService(client llm.Client) *Service {
	return &Service{client: client, tier: llm.TierLite}
}

// Respond answers message about profile, scoped to section when non-empty.
// It never fails: provider errors are logged and a fallback answer is returned.
func (s *Service) Respond(ctx context.Context, message string, profile *types.Profile, section string) string {
	if profile == nil {
		profile = &types.Profile{}
	}
	if s.client == nil {
		return Fallback(message, profile)
	}

	systemPrompt := SystemPrompt(profile, section)
	userPrompt := prompts.Format(prompts.MustGet(chatPrompts, "user"), map[string]string{
		"Context": SectionContext(profile, section),
		"Message": message,
	})

	answer, err := s.client.GenerateChat(ctx, systemPrompt, userPrompt, s.tier)
	if err != nil {
		log.Printf("chat: model %s failed: %v", s.client.GetModel(s.tier), err)
		return Fallback(message, profile)
	}
	if strings.TrimSpace(answer) == "" {
		return prompts.MustGet(fallbackPrompts, "empty-answer")
	}
	return answer
}

// SystemPrompt builds the persona prompt with the focus line for section.
func SystemPrompt(profile *types.Profile, section string) string {
	base := prompts.Format(prompts.MustGet(chatPrompts, "system"), map[string]string{
		"Name":     profile.Name,
		"Title":    profile.Title,
		"Location": profile.Location,
	})

	focus, err := prompts.Get(chatPrompts, "focus-"+section)
	if section == "" || err != nil {
		focus = prompts.MustGet(chatPrompts, "focus-general")
	}

	return prompts.Format(prompts.MustGet(chatPrompts, "focus"), map[string]string{
		"System": base,
		"Focus":  focus,
	})
}

// SectionContext renders the part of the profile relevant to section.
// Unknown or empty sections get the whole profile.
func SectionContext(profile *types.Profile, section string) string {
	var key string
	data := map[string]string{}

	switch section {
	case types.SectionBio:
		key, data["Bio"] = "context-bio", profile.Bio
	case types.SectionExperience:
		key, data["Experience"] = "context-experience", experienceBlock(profile.Experience)
	case types.SectionSkills:
		key, data["Skills"] = "context-skills", strings.Join(profile.Skills, ", ")
	case types.SectionCertificates:
		key, data["Certificates"] = "context-certificates", strings.Join(profile.Certificates, ", ")
	case types.SectionLanguages:
		key, data["Languages"] = "context-languages", languageLines(profile.Languages)
	case types.SectionMemberships:
		key, data["Memberships"] = "context-memberships", strings.Join(profile.Memberships, ", ")
	default:
		return fullContext(profile)
	}

	return prompts.Format(prompts.MustGet(chatPrompts, key), data)
}

func fullContext(profile *types.Profile) string {
	lines := make([]string, len(profile.Experience))
	for i, exp := range profile.Experience {
		lines[i] = fmt.Sprintf("• %s at %s (%s) - %s", exp.Title, exp.Company, exp.Period, exp.Description)
	}

	return prompts.Format(prompts.MustGet(chatPrompts, "context-full"), map[string]string{
		"Name":            profile.Name,
		"Title":           profile.Title,
		"Location":        profile.Location,
		"Bio":             profile.Bio,
		"ExperienceLines": strings.Join(lines, "\n"),
		"Skills":          strings.Join(profile.Skills, ", "),
		"Certificates":    strings.Join(profile.Certificates, ", "),
		"Languages":       languageLines(profile.Languages),
		"Memberships":     strings.Join(profile.Memberships, ", "),
	})
}

func experienceBlock(entries []types.ExperienceEntry) string {
	lines := make([]string, len(entries))
	for i, exp := range entries {
		lines[i] = fmt.Sprintf("• %s at %s (%s)\n  %s", exp.Title, exp.Company, exp.Period, exp.Description)
	}
	return strings.Join(lines, "\n")
}

func languageLines(entries []types.LanguageEntry) string {
	lines := make([]string, len(entries))
	for i, lang := range entries {
		lines[i] = fmt.Sprintf("• %s: %s - %s", lang.Name, lang.Level, lang.Context)
	}
	return strings.Join(lines, "\n")
}

// Fallback answers message from the profile alone using keyword matching.
func Fallback(message string, profile *types.Profile) string {
	lower := strings.ToLower(message)
	tmpl := func(key string) string { return prompts.MustGet(fallbackPrompts, key) }

	switch {
	case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
		recent := tmpl("experience-none")
		if len(profile.Experience) > 0 && profile.Experience[0].Description != "" {
			recent = profile.Experience[0].Description
		}
		return prompts.Format(tmpl("experience"), map[string]string{
			"Name":   profile.Name,
			"Title":  profile.Title,
			"Recent": recent,
		})

	case strings.Contains(lower, "skill") || strings.Contains(lower, "technical"):
		skills, more := profile.Skills, ""
		if len(skills) > maxFallbackSkills {
			skills, more = skills[:maxFallbackSkills], ", and more"
		}
		return prompts.Format(tmpl("skills"), map[string]string{
			"Name":   profile.Name,
			"Skills": strings.Join(skills, ", "),
			"More":   more,
		})

	case strings.Contains(lower, "language"):
		names := make([]string, len(profile.Languages))
		for i, lang := range profile.Languages {
			names[i] = fmt.Sprintf("%s (%s)", lang.Name, lang.Level)
		}
		note := tmpl("languages-none")
		if len(profile.Languages) > 0 && profile.Languages[0].Context != "" {
			note = profile.Languages[0].Context
		}
		return prompts.Format(tmpl("languages"), map[string]string{
			"Name":      profile.Name,
			"Languages": strings.Join(names, ", "),
			"Context":   note,
		})
	}

	return prompts.Format(tmpl("default"), map[string]string{
		"Name":  profile.Name,
		"Title": profile.Title,
		"Years": strconv.Itoa(len(profile.Experience)),
	})
}
