package cvparser

import (
	"regexp"
	"strings"

	"github.com/jonathan/cv-chat/internal/types"
)

var (
	languageSectionKeys = []string{"languages", "language skills"}

	// Tried in order; the first that matches a line decides.
	languagePatterns = []*regexp.Regexp{
		// English - Native[ - context]. The name may not hold "(", ")" or ":" so
		// the parenthesised and colon forms below get their turn.
		regexp.MustCompile(`^[-*]?\s*([^():]+?)\s*[-–—]\s*(.+?)(?:\s*[-–—]\s*(.+))?$`),
		// Spanish (Conversational)[ - context]
		regexp.MustCompile(`^[-*]?\s*(.+?)\s*\((.+?)\)(?:\s*[-–—]\s*(.+))?$`),
		// French: Basic[ - context]
		regexp.MustCompile(`^[-*]?\s*(.+?):\s*(.+?)(?:\s*[-–—]\s*(.+))?$`),
	}
)

// matchLanguage parses one trimmed line; ok is false when no pattern applies.
func matchLanguage(line string) (types.LanguageEntry, bool) {
	for _, re := range languagePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		level := strings.TrimSpace(m[2])
		context := strings.TrimSpace(m[3])
		if context == "" {
			context = level + " proficiency"
		}
		return types.LanguageEntry{
			Name:    strings.TrimSpace(m[1]),
			Level:   level,
			Context: context,
		}, true
	}
	return types.LanguageEntry{}, false
}

// ParseLanguages reads the languages section. Lines matching no known form are skipped.
func ParseLanguages(sections SectionMap) []types.LanguageEntry {
	languages := []types.LanguageEntry{}

	body := sections.LookupNonEmpty(languageSectionKeys...)
	for _, line := range splitLines(body) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isHeaderMarker(trimmed) {
			continue
		}
		if entry, ok := matchLanguage(trimmed); ok {
			languages = append(languages, entry)
		}
	}

	return languages
}
