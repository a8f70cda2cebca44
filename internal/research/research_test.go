package research

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearch_KnownEmployer(t *testing.T) {
	researcher := NewOfflineResearcher()

	result, err := researcher.Research(context.Background(), "Micron Technology")

	require.NoError(t, err)
	assert.Equal(t, 4, result.InclusionScore)
	assert.Contains(t, result.SupportPrograms, "Neurodiversity Hiring Program")
}

func TestResearch_KnownEmployerCaseInsensitive(t *testing.T) {
	researcher := NewOfflineResearcher()

	result, err := researcher.Research(context.Background(), "MICROSOFT")

	require.NoError(t, err)
	assert.Equal(t, 5, result.InclusionScore)
}

func TestResearch_UnknownCompanyBaseline(t *testing.T) {
	researcher := NewOfflineResearcher()

	result, err := researcher.Research(context.Background(), "Totally Unknown LLC")

	require.NoError(t, err)
	assert.Equal(t, 1, result.InclusionScore)
	assert.Empty(t, result.SupportPrograms)
}

func TestResearch_CorpusSignals(t *testing.T) {
	researcher := NewOfflineResearcher().WithCorpus("acme", []string{
		"Acme runs a neurodiversity program and offers flexible work.",
		"Employees praise the mental health support and inclusive culture.",
	})

	result, err := researcher.Research(context.Background(), "Acme")

	require.NoError(t, err)
	assert.Greater(t, result.InclusionScore, 1)
	assert.Contains(t, result.SupportPrograms, "Neurodiversity: Neurodiversity Program")
}

func TestAnalyzeInclusionSignals(t *testing.T) {
	tests := []struct {
		name          string
		snippets      []string
		expectedScore int
	}{
		{
			name:          "No snippets scores baseline",
			snippets:      nil,
			expectedScore: 1,
		},
		{
			name:          "Few signals stay low",
			snippets:      []string{"We offer flexible work."},
			expectedScore: 1,
		},
		{
			name: "Many signals raise the score",
			snippets: []string{
				"neurodiversity program, adhd support, cognitive diversity",
				"workplace accommodations, sensory rooms, quiet spaces",
				"mental health support, employee resource groups, mentorship program",
				"inclusive culture, accessibility, work-life balance",
			},
			expectedScore: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := AnalyzeInclusionSignals(tt.snippets)
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestAnalyzeInclusionSignals_ProgramsSortedAndCapped(t *testing.T) {
	snippets := []string{
		"neurodiversity program, autism program, adhd support, cognitive diversity, " +
			"workplace accommodations, flexible work, sensory rooms, quiet spaces",
	}

	_, programs := AnalyzeInclusionSignals(snippets)

	assert.Len(t, programs, 5)
	for i := 1; i < len(programs); i++ {
		assert.LessOrEqual(t, programs[i-1], programs[i])
	}
}

func TestAnalyzeInclusionSignals_Deterministic(t *testing.T) {
	snippets := []string{"inclusive culture, mentorship program, flexible work"}

	firstScore, firstPrograms := AnalyzeInclusionSignals(snippets)
	for i := 0; i < 5; i++ {
		score, programs := AnalyzeInclusionSignals(snippets)
		assert.Equal(t, firstScore, score)
		assert.Equal(t, firstPrograms, programs)
	}
}
