package cvparser

import (
	"testing"

	"github.com/jonathan/cv-chat/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseExperience(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []types.ExperienceEntry
	}{
		{
			name:  "single entry with bullets",
			input: "## Experience\nSenior Engineer at Acme - 2021-Present\n- Led platform migration\n- Mentored 3 engineers",
			expected: []types.ExperienceEntry{
				{Title: "Senior Engineer", Company: "Acme", Period: "2021-Present", Description: "Led platform migration Mentored 3 engineers"},
			},
		},
		{
			name: "multiple entries with continuation lines and dash variants",
			input: `## Work Experience
Staff Engineer at Acme – 2021-Present
- Led platform migration
Owned the reliability roadmap.
* Senior Engineer at Initech — 2018-2021
* Built billing services`,
			expected: []types.ExperienceEntry{
				{Title: "Staff Engineer", Company: "Acme", Period: "2021-Present", Description: "Led platform migration Owned the reliability roadmap."},
				{Title: "Senior Engineer", Company: "Initech", Period: "2018-2021", Description: "Built billing services"},
			},
		},
		{
			name:  "lines before the first entry are ignored",
			input: "## Employment\nA short intro.\n- stray bullet\nDeveloper at Globex - 2015-2018",
			expected: []types.ExperienceEntry{
				{Title: "Developer", Company: "Globex", Period: "2015-2018"},
			},
		},
		{
			name:  "header markers do not extend descriptions",
			input: "## Experience\nDeveloper at Globex - 2015\n#\nShipped things",
			expected: []types.ExperienceEntry{
				{Title: "Developer", Company: "Globex", Period: "2015", Description: "Shipped things"},
			},
		},
		{
			name:  "empty bullet adds nothing",
			input: "## Experience\nDeveloper at Globex - 2015\n-\n- Shipped things",
			expected: []types.ExperienceEntry{
				{Title: "Developer", Company: "Globex", Period: "2015", Description: "Shipped things"},
			},
		},
		{
			name:  "empty experience falls through to employment",
			input: "## Experience\n## Employment\nDeveloper at Globex - 2015",
			expected: []types.ExperienceEntry{
				{Title: "Developer", Company: "Globex", Period: "2015"},
			},
		},
		{
			name:     "no experience section",
			input:    "## Skills\nGo",
			expected: []types.ExperienceEntry{},
		},
		{
			name:     "no job lines",
			input:    "## Experience\nLots of things happened.",
			expected: []types.ExperienceEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseExperience(Segment(tt.input)))
		})
	}
}

func TestExperienceState_Transitions(t *testing.T) {
	var s experienceState

	s = s.step("orphan line")
	assert.Nil(t, s.current, "no entry opens without a job line")

	s = s.step("Engineer at Acme - 2020")
	if assert.NotNil(t, s.current) {
		assert.Equal(t, "Engineer", s.current.Title)
	}
	assert.Empty(t, s.done)

	before := s
	s = s.step("- first")
	assert.Equal(t, "", before.current.Description, "step does not mutate the previous state")
	assert.Equal(t, "first", s.current.Description)

	s = s.step("Manager at Initech - 2022")
	assert.Len(t, s.done, 1, "a new job line flushes the open entry")
	assert.Equal(t, "Manager", s.current.Title)

	out := s.finish()
	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Description)
}
