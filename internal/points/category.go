package points

import "strings"

// Category classifies a point. It controls the point's color and which
// filter toggle governs its visibility.
type Category int

const (
	Personal Category = iota
	ResearchProject
	ProjectKeyPhrase
)

// DefaultCategory is used for new points and for anything unrecognized.
const DefaultCategory = Personal

// Categories lists every category in display order.
var Categories = []Category{Personal, ResearchProject, ProjectKeyPhrase}

var categoryNames = map[Category]string{
	Personal:         "Personal Trait",
	ResearchProject:  "Research Project Trait",
	ProjectKeyPhrase: "Project Key Phrase",
}

// String returns the display name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[DefaultCategory]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Normalize maps unknown values onto DefaultCategory.
func (c Category) Normalize() Category {
	if c.Valid() {
		return c
	}
	return DefaultCategory
}

// ParseCategory accepts a display name ("Research Project Trait") or a short
// name ("research", "keyphrase"), case-insensitively.
func ParseCategory(s string) (Category, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(key)
	switch key {
	case "personaltrait", "personal":
		return Personal, true
	case "researchprojecttrait", "researchproject", "research":
		return ResearchProject, true
	case "projectkeyphrase", "keyphrase", "phrase":
		return ProjectKeyPhrase, true
	}
	return DefaultCategory, false
}
