package cvparser

import "strings"

var (
	skillSectionKeys       = []string{"skills", "technical skills", "technologies"}
	certificateSectionKeys = []string{"certificates", "certifications", "credentials"}
	membershipSectionKeys  = []string{"memberships", "organizations", "associations"}
)

// ParseSkills reads the skills section. Comma-separated lines yield one
// item per piece.
func ParseSkills(sections SectionMap) []string {
	return parseList(sections.LookupNonEmpty(skillSectionKeys...), true)
}

// ParseCertificates reads the certificates section, one item per line.
func ParseCertificates(sections SectionMap) []string {
	return parseList(sections.LookupNonEmpty(certificateSectionKeys...), false)
}

// ParseMemberships reads the memberships section, one item per line.
func ParseMemberships(sections SectionMap) []string {
	return parseList(sections.LookupNonEmpty(membershipSectionKeys...), false)
}

func parseList(body string, splitCommas bool) []string {
	items := []string{}
	if body == "" {
		return items
	}

	for _, line := range splitLines(body) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isHeaderMarker(trimmed) {
			continue
		}

		if splitCommas && strings.Contains(trimmed, ",") {
			for _, piece := range strings.Split(trimmed, ",") {
				items = appendNonEmpty(items, strings.TrimSpace(piece))
			}
			continue
		}

		text, _ := stripBullet(trimmed)
		items = appendNonEmpty(items, text)
	}

	return items
}

func appendNonEmpty(items []string, item string) []string {
	if item == "" {
		return items
	}
	return append(items, item)
}
