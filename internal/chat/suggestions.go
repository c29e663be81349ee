package chat

import (
	"strings"

	"github.com/jonathan/cv-chat/internal/prompts"
	"github.com/jonathan/cv-chat/internal/types"
)

const suggestionPrompts = "suggestions.json"

// Suggestions returns the follow-up questions offered for a section.
// Unknown sections get the general list.
func Suggestions(section string, profile *types.Profile) []string {
	text, err := prompts.Get(suggestionPrompts, section)
	if err != nil {
		text = prompts.MustGet(suggestionPrompts, "general")
	}

	data := map[string]string{"Name": "them", "Title": "professional"}
	if profile != nil {
		if profile.Name != "" {
			data["Name"] = profile.Name
		}
		if profile.Title != "" {
			data["Title"] = profile.Title
		}
	}

	return strings.Split(prompts.Format(text, data), "\n")
}
