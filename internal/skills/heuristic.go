package skills

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches candidate skill tokens: alphanumeric runs that may
// include the +, #, . and - characters common in technology names (c++, c#,
// node.js, scikit-learn).
var tokenPattern = regexp.MustCompile(`[A-Za-z+#.\-]{2,}`)

// commonSkills is the fixed allow-list used by the heuristic extractor.
// Small on purpose: it keeps offline responses useful without pretending to
// be exhaustive.
var commonSkills = []string{
	"aws",
	"azure",
	"css",
	"django",
	"docker",
	"flask",
	"git",
	"html",
	"java",
	"javascript",
	"kubernetes",
	"node",
	"python",
	"react",
	"sql",
}

// HeuristicExtract scans a document for known technology keywords. It is
// deterministic, needs no network access, and is the guaranteed-available
// extraction path when no generation service is configured or a call fails.
//
// A keyword matches when it is a substring of any document token. Every match
// is tagged technical and the result is sorted by keyword.
func HeuristicExtract(document string) []Record {
	tokens := tokenPattern.FindAllString(strings.ToLower(document), -1)

	found := make([]string, 0, len(commonSkills))
	for _, keyword := range commonSkills {
		for _, token := range tokens {
			if strings.Contains(token, keyword) {
				found = append(found, keyword)
				break
			}
		}
	}
	sort.Strings(found)

	records := make([]Record, 0, len(found))
	for _, name := range found {
		records = append(records, Record{Name: name, Category: CategoryTechnical})
	}
	return records
}
