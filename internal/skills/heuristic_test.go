package skills

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordNames(records []Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.SkillName())
	}
	return names
}

func TestHeuristicExtract(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected []string
	}{
		{
			name:     "Known keywords found",
			document: "We need experience in Python and React for frontend development.",
			expected: []string{"python", "react"},
		},
		{
			name:     "Case insensitive",
			document: "PYTHON, Docker and KUBERNETES experience required",
			expected: []string{"docker", "kubernetes", "python"},
		},
		{
			name:     "Keyword as substring of a document token",
			document: "Experience with node.js and javascript frameworks",
			expected: []string{"java", "javascript", "node"},
		},
		{
			name:     "No known skills",
			document: "We are looking for a friendly barista.",
			expected: []string{},
		},
		{
			name:     "Empty document",
			document: "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := HeuristicExtract(tt.document)
			assert.Equal(t, tt.expected, recordNames(records))
			for _, r := range records {
				assert.Equal(t, CategoryTechnical, r.Category)
			}
		})
	}
}

func TestHeuristicExtract_Deterministic(t *testing.T) {
	document := "Senior engineer: Python, AWS, Docker, SQL, Git and Django required."

	first := HeuristicExtract(document)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, HeuristicExtract(document))
	}
	assert.True(t, sort.StringsAreSorted(recordNames(first)))
}
