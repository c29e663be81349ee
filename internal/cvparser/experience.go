package cvparser

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-chat/internal/types"
)

var (
	experienceSectionKeys = []string{"experience", "work experience", "employment"}

	// "<title> at <company> - <period>", dash family separators, optional bullet.
	jobStartPattern = regexp.MustCompile(`^[-*]?\s*(.+?)\s+at\s+(.+?)\s*[-–—]\s*(.+)$`)
)

// experienceState is the fold accumulator: finished entries plus the one being built.
type experienceState struct {
	done    []types.ExperienceEntry
	current *types.ExperienceEntry
}

// step consumes one trimmed, non-empty line.
func (s experienceState) step(line string) experienceState {
	if m := jobStartPattern.FindStringSubmatch(line); m != nil {
		if s.current != nil {
			s.done = append(s.done, *s.current)
		}
		s.current = &types.ExperienceEntry{
			Title:   strings.TrimSpace(m[1]),
			Company: strings.TrimSpace(m[2]),
			Period:  strings.TrimSpace(m[3]),
		}
		return s
	}

	if s.current == nil {
		return s
	}

	text, isBullet := stripBullet(line)
	if !isBullet && isHeaderMarker(line) {
		return s
	}
	s.current = appendDescription(s.current, text)
	return s
}

// finish flushes the open entry.
func (s experienceState) finish() []types.ExperienceEntry {
	out := append([]types.ExperienceEntry{}, s.done...)
	if s.current != nil {
		out = append(out, *s.current)
	}
	return out
}

func appendDescription(entry *types.ExperienceEntry, text string) *types.ExperienceEntry {
	if text == "" {
		return entry
	}
	next := *entry
	if next.Description != "" {
		next.Description += " "
	}
	next.Description += text
	return &next
}

// ParseExperience reads the work history section. Entries only start on a
// job line; bullets and plain lines extend the open entry's description.
func ParseExperience(sections SectionMap) []types.ExperienceEntry {
	body := sections.LookupNonEmpty(experienceSectionKeys...)
	if body == "" {
		return []types.ExperienceEntry{}
	}

	var state experienceState
	for _, line := range splitLines(body) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		state = state.step(trimmed)
	}
	return state.finish()
}
