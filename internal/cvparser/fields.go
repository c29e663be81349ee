package cvparser

import (
	"regexp"
	"strings"
)

// Defaults returned when no pattern matches.
const (
	DefaultName     = "Professional"
	DefaultTitle    = "Software Professional"
	DefaultLocation = ""
)

// matcher returns the captured value when it matches the document.
type matcher func(content string) (string, bool)

func captureFirst(pattern string) matcher {
	re := regexp.MustCompile(pattern)
	return func(content string) (string, bool) {
		m := re.FindStringSubmatch(content)
		if m == nil {
			return "", false
		}
		return strings.TrimSpace(m[1]), true
	}
}

// firstMatch runs matchers in order; the first one that matches decides, even if its capture trims to "".
func firstMatch(content string, matchers []matcher, fallback string) string {
	for _, match := range matchers {
		if value, ok := match(content); ok {
			return value
		}
	}
	return fallback
}

var (
	nameMatchers = []matcher{
		captureFirst(`(?m)^#\s*([^#\n]+)`),
		captureFirst(`(?i)name:\s*(.+)`),
		captureFirst(`(?m)^([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	}

	titleMatchers = []matcher{
		captureFirst(`(?i)title:\s*(.+)`),
		captureFirst(`(?i)position:\s*(.+)`),
		captureFirst(`(?i)role:\s*(.+)`),
		captureFirst(`(?i)##\s*([^#\n]+(?:engineer|developer|manager|architect|analyst|consultant))`),
	}

	locationMatchers = []matcher{
		captureFirst(`(?i)location:\s*(.+)`),
		captureFirst(`(?i)address:\s*(.+)`),
		captureFirst(`(?i)based in:\s*(.+)`),
		captureFirst(`([A-Z][a-z]+,\s*[A-Z]{2})`),
	}

	bioSectionKeys = []string{"summary", "bio", "biography", "about", "overview", "profile"}
)

// ExtractName returns the candidate name from the first level-1 header,
// a "name:" field, or a leading "First Last" line.
func ExtractName(content string) string {
	return firstMatch(content, nameMatchers, DefaultName)
}

// ExtractTitle returns the professional title.
func ExtractTitle(content string) string {
	return firstMatch(content, titleMatchers, DefaultTitle)
}

// ExtractLocation returns the location, or "" when none is found.
func ExtractLocation(content string) string {
	return firstMatch(content, locationMatchers, DefaultLocation)
}

// ExtractBio returns the first bio-like section body. A present but empty
// section is returned as "", indistinguishable from a missing one.
func ExtractBio(sections SectionMap) string {
	body, _ := sections.Lookup(bioSectionKeys...)
	return body
}
