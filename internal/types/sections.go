package types

// Section identifiers shared by the chat prompts, suggestions and section cards.
const (
	SectionBio          = "bio"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionCertificates = "certificates"
	SectionLanguages    = "languages"
	SectionMemberships  = "memberships"
)

// Section describes one CV section card
type Section struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	ColorClass  string `json:"colorClass"`
}

// CVSections returns the fixed section metadata in display order.
func CVSections() []Section {
	return []Section{
		{ID: SectionBio, Name: "Biography", Icon: "fas fa-user", Description: "Personal overview", ColorClass: "bg-primary/10 text-primary"},
		{ID: SectionExperience, Name: "Experience", Icon: "fas fa-briefcase", Description: "Work history", ColorClass: "bg-accent/50 text-foreground"},
		{ID: SectionSkills, Name: "Skills", Icon: "fas fa-code", Description: "Technical abilities", ColorClass: "bg-green-100 text-green-600"},
		{ID: SectionCertificates, Name: "Certificates", Icon: "fas fa-certificate", Description: "Certifications", ColorClass: "bg-yellow-100 text-yellow-600"},
		{ID: SectionLanguages, Name: "Languages", Icon: "fas fa-globe", Description: "Language skills", ColorClass: "bg-purple-100 text-purple-600"},
		{ID: SectionMemberships, Name: "Memberships", Icon: "fas fa-users", Description: "Organizations", ColorClass: "bg-blue-100 text-blue-600"},
	}
}
