package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/inclusive-jobsearch/internal/analysis"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Description string   `json:"description" validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Skills      []string `json:"skills,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	RequestID             string   `json:"request_id"`
	SimplifiedDescription string   `json:"simplified_description"`
	Skills                []string `json:"skills"`
	MatchPercentage       int      `json:"matchPercentage"`
	InclusionScore        int      `json:"inclusionScore"`
	SupportPrograms       []string `json:"supportPrograms"`
}

// ExtractSkillsRequest represents the request body for /skills/extract
type ExtractSkillsRequest struct {
	Description string `json:"description" validate:"required"`
}

// Validate validates the ExtractSkillsRequest using the validator.
func (r *ExtractSkillsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ExplainSkillRequest represents the request body for /skills/explain
type ExplainSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// Validate validates the ExplainSkillRequest using the validator.
func (r *ExplainSkillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleHome reports that the API is up
func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Inclusive Job Search API is running",
	})
}

// handleHealth is the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs a full job posting analysis
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description and company name are required")
		return
	}

	requestID := uuid.New().String()
	log.Printf("Analysis request %s for company %q (%d user skills)", requestID, req.Company, len(req.Skills))

	result, err := s.service.Analyze(r.Context(), req.Description, req.Company, req.Skills)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptyDocument) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RequestID:             requestID,
		SimplifiedDescription: result.SimplifiedDescription,
		Skills:                result.Skills,
		MatchPercentage:       result.MatchPercentage,
		InclusionScore:        result.InclusionScore,
		SupportPrograms:       result.SupportPrograms,
	})
}

// handleExtractSkills returns the normalized required skills of a document
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required")
		return
	}

	extracted, err := s.service.ExtractSkills(r.Context(), req.Description)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": extracted})
}

// handleExplainSkill returns a plain-language explanation for one skill
func (s *Server) handleExplainSkill(w http.ResponseWriter, r *http.Request) {
	var req ExplainSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Skill is required")
		return
	}

	explanation := s.service.ExplainSkill(r.Context(), req.Skill)
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"skill":       req.Skill,
		"explanation": explanation,
	})
}
