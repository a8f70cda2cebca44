// Package analysis orchestrates a job posting analysis: skill extraction,
// normalization, match scoring, text simplification and company research.
// Each call is independent and stateless; nothing is persisted.
package analysis

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/inclusive-jobsearch/internal/matching"
	"github.com/jonathan/inclusive-jobsearch/internal/research"
	"github.com/jonathan/inclusive-jobsearch/internal/simplify"
	"github.com/jonathan/inclusive-jobsearch/internal/skills"
)

// ErrEmptyDocument indicates the job description text was absent
var ErrEmptyDocument = errors.New("job description is required")

// Result is the complete analysis of one job posting
type Result struct {
	SimplifiedDescription string   `json:"simplified_description"`
	Skills                []string `json:"skills"`
	MatchPercentage       int      `json:"matchPercentage"`
	InclusionScore        int      `json:"inclusionScore"`
	SupportPrograms       []string `json:"supportPrograms"`
}

// Service runs analyses. Dependencies are injected at construction so the
// service needs no ambient configuration.
type Service struct {
	extractor  *skills.Extractor
	researcher research.Researcher
}

// NewService creates an analysis service from its collaborators
func NewService(extractor *skills.Extractor, researcher research.Researcher) *Service {
	return &Service{
		extractor:  extractor,
		researcher: researcher,
	}
}

// Analyze runs the full analysis for one job posting. The skills branch
// (extract, normalize, score, simplify) and the company research branch are
// independent, so they run in parallel; both are total aside from the empty
// document check.
func (s *Service) Analyze(ctx context.Context, document, companyName string, userSkills []string) (*Result, error) {
	if strings.TrimSpace(document) == "" {
		return nil, ErrEmptyDocument
	}

	result := &Result{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records := s.extractor.Extract(gCtx, document)
		result.Skills = skills.Normalize(records)
		result.MatchPercentage = matching.Score(result.Skills, userSkills)
		result.SimplifiedDescription = simplify.Simplify(document)
		return nil
	})

	g.Go(func() error {
		company, err := s.researcher.Research(gCtx, companyName)
		if err != nil {
			return err
		}
		result.InclusionScore = company.InclusionScore
		result.SupportPrograms = company.SupportPrograms
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ExplainSkill returns a plain-language explanation for one skill
func (s *Service) ExplainSkill(ctx context.Context, skill string) string {
	return s.extractor.ExplainSkill(ctx, skill)
}

// ExtractSkills extracts and normalizes the required skills of a document
// without scoring or simplification
func (s *Service) ExtractSkills(ctx context.Context, document string) ([]string, error) {
	if strings.TrimSpace(document) == "" {
		return nil, ErrEmptyDocument
	}
	return skills.Normalize(s.extractor.Extract(ctx, document)), nil
}
