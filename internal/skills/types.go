// Package skills provides skill extraction and normalization for job
// descriptions. Extraction prefers a generation service returning structured
// JSON and falls back to a deterministic keyword scan, so the package works
// with no API key configured.
package skills

import "strings"

// Category labels a skill as technical or soft. Best-effort: sources that do
// not categorize default to technical.
type Category string

// Category constants define the known skill categories
const (
	// CategoryTechnical marks hard/technology skills
	CategoryTechnical Category = "technical"
	// CategorySoft marks interpersonal and organizational skills
	CategorySoft Category = "soft"
)

// Record is one extracted skill before normalization. Upstream sources vary:
// generation services usually emit the name under "name" but some return
// "skill" instead, so both keys are accepted.
type Record struct {
	Name     string   `json:"name,omitempty"`
	AltName  string   `json:"skill,omitempty"`
	Category Category `json:"category,omitempty"`
}

// SkillName returns the bare skill name of the record, preferring the
// canonical "name" key over the alternate "skill" key.
func (r Record) SkillName() string {
	if strings.TrimSpace(r.Name) != "" {
		return r.Name
	}
	return r.AltName
}

// ExtractionResult is the JSON shape the generation service is asked to
// produce for skill extraction.
type ExtractionResult struct {
	Skills []Record `json:"skills"`
}
