package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jonathan/inclusive-jobsearch/internal/llm"
	"github.com/jonathan/inclusive-jobsearch/internal/schemas"
)

// DefaultTimeout bounds a single generation-service call. There are no
// retries: one failure routes straight to the heuristic fallback.
const DefaultTimeout = 30 * time.Second

// skillSchemaPath is the JSON Schema the generation response must satisfy
const skillSchemaPath = "schemas/skill_extraction.schema.json"

// Extractor produces skill records from job description text. With a
// generation client it prompts the service for structured JSON; without one,
// or whenever the service fails, it uses the deterministic keyword scan. The
// two paths are indistinguishable to callers apart from result quality.
type Extractor struct {
	client  llm.Client
	timeout time.Duration
}

// NewExtractor creates an Extractor backed by the given generation client.
// A nil client is valid and yields a fallback-only extractor.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{
		client:  client,
		timeout: DefaultTimeout,
	}
}

// WithTimeout overrides the generation-service call timeout
func (e *Extractor) WithTimeout(timeout time.Duration) *Extractor {
	e.timeout = timeout
	return e
}

// Extract returns skill records for a job description. It never fails: every
// primary-path error (network, timeout, malformed JSON, schema mismatch) is
// swallowed and the heuristic result returned instead.
func (e *Extractor) Extract(ctx context.Context, document string) []Record {
	if e.client == nil {
		return HeuristicExtract(document)
	}

	records, err := e.extractWithService(ctx, document)
	if err != nil {
		log.Printf("Generation service extraction failed, using heuristic fallback: %v", err)
		return HeuristicExtract(document)
	}
	return records
}

// extractWithService runs the primary extraction path
func (e *Extractor) extractWithService(ctx context.Context, document string) ([]Record, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	response, err := e.client.GenerateJSON(ctx, buildExtractionPrompt(document), llm.TierLite)
	if err != nil {
		return nil, &APICallError{Message: "skill extraction call failed", Cause: err}
	}

	response = llm.CleanJSONBlock(response)

	// Validate the response shape before trusting it (schema optional: when
	// the schema file cannot be resolved the structural check below still runs)
	if schemaPath := schemas.ResolvePath(skillSchemaPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, []byte(response)); err != nil {
			return nil, &ParseError{Message: "response does not match skill schema", Cause: err}
		}
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(response), &result); err != nil {
		return nil, &ParseError{Message: "failed to parse JSON response", Cause: err}
	}

	records := make([]Record, 0, len(result.Skills))
	for _, record := range result.Skills {
		if strings.TrimSpace(record.SkillName()) == "" {
			continue
		}
		if record.Category != CategorySoft {
			record.Category = CategoryTechnical
		}
		records = append(records, record)
	}
	return records, nil
}

// ExplainSkill returns a short plain-language explanation of a skill. With no
// generation client, or when the call fails, a concise template is returned so
// the operation stays total.
func (e *Extractor) ExplainSkill(ctx context.Context, skill string) string {
	if e.client == nil {
		return templateExplanation(skill)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	text, err := e.client.GenerateContent(ctx, buildExplainPrompt(skill), llm.TierLite)
	if err != nil {
		log.Printf("Generation service explanation failed, using template: %v", err)
		return templateExplanation(skill)
	}
	return strings.TrimSpace(text)
}

// buildExtractionPrompt constructs the structured-extraction prompt
func buildExtractionPrompt(document string) string {
	var sb strings.Builder

	sb.WriteString("You are a skills analysis expert. Extract technical and soft skills ")
	sb.WriteString("from the following job description.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`{"skills": [{"name": "python", "category": "technical"}, {"name": "communication", "category": "soft"}]}`)
	sb.WriteString("\n\nIMPORTANT:\n")
	sb.WriteString("- \"category\" must be either \"technical\" or \"soft\".\n")
	sb.WriteString("- Extract skills directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")
	sb.WriteString("Job description:\n\"\"\"\n")
	sb.WriteString(document)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// buildExplainPrompt constructs the skill-explanation prompt
func buildExplainPrompt(skill string) string {
	return "Explain this technical skill in simple, concrete terms with a short " +
		"analogy and one practical example. Keep it concise. Skill: " + skill
}

// templateExplanation is the deterministic explanation fallback
func templateExplanation(skill string) string {
	return fmt.Sprintf("%s: A practical skill often used in software work. Try searching examples online to learn step-by-step.", skill)
}
