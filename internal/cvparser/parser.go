// Package cvparser converts a free-form markdown CV into a structured profile patch.
//
// Parsing is heuristic: the document is split into header sections, scalar
// fields are matched against the whole text with ordered pattern chains, and
// list fields are read line by line from a few synonymous section names.
// Every function here is pure and safe for concurrent use.
package cvparser

import (
	"fmt"

	"github.com/jonathan/cv-chat/internal/types"
)

// Parse extracts every profile field from content. Scalars fall back to
// their defaults and lists to empty slices, so a successful patch always
// sets every field. If extraction panics the patch is empty and err is a
// *ParseError.
func Parse(content string) (patch *types.ProfilePatch, err error) {
	defer func() {
		if r := recover(); r != nil {
			patch = &types.ProfilePatch{}
			err = &ParseError{Message: "parsing failed", Cause: fmt.Errorf("%v", r)}
		}
	}()

	content = normalizeNewlines(content)
	sections := Segment(content)

	name := ExtractName(content)
	title := ExtractTitle(content)
	location := ExtractLocation(content)
	bio := ExtractBio(sections)

	return &types.ProfilePatch{
		Name:         &name,
		Title:        &title,
		Location:     &location,
		Bio:          &bio,
		Experience:   ParseExperience(sections),
		Skills:       ParseSkills(sections),
		Certificates: ParseCertificates(sections),
		Languages:    ParseLanguages(sections),
		Memberships:  ParseMemberships(sections),
	}, nil
}
