package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/inclusive-jobsearch/internal/research"
	"github.com/jonathan/inclusive-jobsearch/internal/skills"
)

func newOfflineService() *Service {
	// Nil generation client: heuristic extraction only
	return NewService(skills.NewExtractor(nil), research.NewOfflineResearcher())
}

func TestAnalyze_EndToEndOffline(t *testing.T) {
	svc := newOfflineService()

	result, err := svc.Analyze(
		context.Background(),
		"We need experience in Python and React for frontend development.",
		"Totally Unknown LLC",
		[]string{"python"},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"python", "react"}, result.Skills)
	// 1 of 2 required skills matched
	assert.Equal(t, 50, result.MatchPercentage)
	assert.Contains(t, result.SimplifiedDescription, "frontend development (simplified:")
	assert.Equal(t, 1, result.InclusionScore)
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	svc := newOfflineService()

	result, err := svc.Analyze(context.Background(), "   ", "Acme", nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestAnalyze_NoUserSkills(t *testing.T) {
	svc := newOfflineService()

	result, err := svc.Analyze(context.Background(), "Python required.", "Acme", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.MatchPercentage)
	assert.Equal(t, []string{"python"}, result.Skills)
}

func TestAnalyze_KnownEmployerResearch(t *testing.T) {
	svc := newOfflineService()

	result, err := svc.Analyze(context.Background(), "Python required.", "Micron Technology", nil)

	require.NoError(t, err)
	assert.Equal(t, 4, result.InclusionScore)
	assert.Contains(t, result.SupportPrograms, "Neurodiversity Hiring Program")
}

func TestAnalyze_RepeatedCallsDeterministic(t *testing.T) {
	svc := newOfflineService()
	document := "Looking for Docker, Kubernetes and SQL experience."

	first, err := svc.Analyze(context.Background(), document, "Acme", []string{"docker"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := svc.Analyze(context.Background(), document, "Acme", []string{"docker"})
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestExtractSkills(t *testing.T) {
	svc := newOfflineService()

	extracted, err := svc.ExtractSkills(context.Background(), "Django and Flask shop.")

	require.NoError(t, err)
	assert.Equal(t, []string{"django", "flask"}, extracted)
}

func TestExtractSkills_EmptyDocument(t *testing.T) {
	svc := newOfflineService()

	_, err := svc.ExtractSkills(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestExplainSkill_Offline(t *testing.T) {
	svc := newOfflineService()

	explanation := svc.ExplainSkill(context.Background(), "sql")

	assert.Contains(t, explanation, "sql")
}
