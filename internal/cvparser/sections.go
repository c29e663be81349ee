package cvparser

import (
	"regexp"
	"strings"
)

var headerPattern = regexp.MustCompile(`^#+\s*(.+)$`)

// SectionMap maps lower-cased header titles to the text that follows them.
// A repeated header keeps its first position in Keys but the last body wins.
type SectionMap struct {
	bodies map[string]string
	order  []string
}

func newSectionMap() SectionMap {
	return SectionMap{bodies: make(map[string]string)}
}

func (m *SectionMap) set(key, body string) {
	if _, exists := m.bodies[key]; !exists {
		m.order = append(m.order, key)
	}
	m.bodies[key] = body
}

// Get returns the body stored under key.
func (m SectionMap) Get(key string) (string, bool) {
	body, ok := m.bodies[key]
	return body, ok
}

// Lookup returns the body of the first key present, even when that body is empty.
func (m SectionMap) Lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if body, ok := m.bodies[key]; ok {
			return body, true
		}
	}
	return "", false
}

// LookupNonEmpty returns the first non-empty body among keys.
func (m SectionMap) LookupNonEmpty(keys ...string) string {
	for _, key := range keys {
		if body := m.bodies[key]; body != "" {
			return body
		}
	}
	return ""
}

// Keys returns section keys in the order their header first appeared.
func (m SectionMap) Keys() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of distinct sections.
func (m SectionMap) Len() int {
	return len(m.bodies)
}

// Segment splits a markdown document into sections keyed by header text.
// Lines before the first header belong to no section and are dropped.
func Segment(content string) SectionMap {
	sections := newSectionMap()

	var title string
	var body []string
	flush := func() {
		if title != "" {
			sections.set(strings.ToLower(title), strings.TrimSpace(strings.Join(body, "\n")))
		}
	}

	for _, line := range splitLines(content) {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			flush()
			title = strings.TrimSpace(m[1])
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

func splitLines(content string) []string {
	return strings.Split(normalizeNewlines(content), "\n")
}

func normalizeNewlines(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// isHeaderMarker reports whether a trimmed line starts with '#'.
func isHeaderMarker(line string) bool {
	return strings.HasPrefix(line, "#")
}

// stripBullet removes a single leading '-' or '*' marker.
func stripBullet(line string) (string, bool) {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return strings.TrimSpace(line[1:]), true
	}
	return line, false
}
