// Package research scores employer inclusiveness for neurodivergent job
// seekers. It is consumed as an opaque collaborator by the analysis layer:
// given a company name, return an inclusion score and the support programs
// found. The shipped implementation is fully offline.
package research

import (
	"context"
	"math"
	"sort"
	"strings"
)

// Result is the outcome of researching one company
type Result struct {
	InclusionScore  int      `json:"inclusion_score"`
	SupportPrograms []string `json:"support_programs"`
}

// Researcher looks up inclusion information for a company
type Researcher interface {
	Research(ctx context.Context, companyName string) (Result, error)
}

// inclusionIndicators groups the phrases that signal inclusive practices,
// by category
var inclusionIndicators = map[string][]string{
	"neurodiversity": {
		"neurodiversity program", "neurodivergent employees", "autism program",
		"adhd support", "cognitive diversity",
	},
	"accommodation": {
		"workplace accommodations", "flexible work", "sensory rooms",
		"quiet spaces", "adaptive technology",
	},
	"support": {
		"mental health support", "employee resource groups", "mentorship program",
		"training programs", "career development",
	},
	"culture": {
		"inclusive culture", "diversity initiative", "equal opportunity",
		"accessibility", "work-life balance",
	},
}

// maxReportedPrograms caps the support-program list in a result
const maxReportedPrograms = 5

// OfflineResearcher resolves companies against a curated dataset of known
// neurodiversity-hiring employers, falling back to signal analysis over any
// configured corpus snippets. It performs no network access.
type OfflineResearcher struct {
	// corpus holds optional text snippets about companies, keyed by
	// lower-cased company name
	corpus map[string][]string
}

// NewOfflineResearcher creates a researcher with the built-in dataset only
func NewOfflineResearcher() *OfflineResearcher {
	return &OfflineResearcher{corpus: map[string][]string{}}
}

// WithCorpus registers text snippets about a company for signal analysis
func (r *OfflineResearcher) WithCorpus(companyName string, snippets []string) *OfflineResearcher {
	r.corpus[strings.ToLower(strings.TrimSpace(companyName))] = snippets
	return r
}

// knownEmployers is the curated dataset of employers with documented
// neurodiversity hiring programs
var knownEmployers = map[string]Result{
	"micron": {
		InclusionScore: 4,
		SupportPrograms: []string{
			"Neurodiversity Hiring Program",
			"Employee Resource Groups (ERGs)",
		},
	},
	"microsoft": {
		InclusionScore: 5,
		SupportPrograms: []string{
			"Neurodiversity Hiring Program",
			"Autism Hiring Program",
			"Employee Resource Groups (ERGs)",
		},
	},
	"sap": {
		InclusionScore: 5,
		SupportPrograms: []string{
			"Autism at Work Program",
			"Workplace Accommodations",
		},
	},
	"jpmorgan": {
		InclusionScore: 4,
		SupportPrograms: []string{
			"Autism at Work Program",
			"Mentorship Program",
		},
	},
}

// Research returns the inclusion result for a company. Unknown companies with
// no corpus get the neutral baseline (score 1, no programs) rather than an
// error; research is best-effort by contract.
func (r *OfflineResearcher) Research(_ context.Context, companyName string) (Result, error) {
	name := strings.ToLower(strings.TrimSpace(companyName))

	for known, result := range knownEmployers {
		if strings.Contains(name, known) {
			return result, nil
		}
	}

	score, programs := AnalyzeInclusionSignals(r.corpus[name])
	return Result{InclusionScore: score, SupportPrograms: programs}, nil
}

// AnalyzeInclusionSignals scans text snippets for inclusion indicators and
// derives a 1-5 score plus the list of programs found. Deterministic: the
// program list is sorted and capped.
func AnalyzeInclusionSignals(snippets []string) (int, []string) {
	totalMatches := 0
	programSet := make(map[string]bool)

	for _, snippet := range snippets {
		lower := strings.ToLower(snippet)
		for category, indicators := range inclusionIndicators {
			for _, indicator := range indicators {
				if strings.Contains(lower, indicator) {
					totalMatches++
					programSet[titleCase(category)+": "+titleCase(indicator)] = true
				}
			}
		}
	}

	score := int(math.Round(1 + float64(totalMatches)/8))
	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}

	programs := make([]string, 0, len(programSet))
	for program := range programSet {
		programs = append(programs, program)
	}
	sort.Strings(programs)
	if len(programs) > maxReportedPrograms {
		programs = programs[:maxReportedPrograms]
	}

	return score, programs
}

// titleCase capitalizes the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
