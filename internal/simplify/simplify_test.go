package simplify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify_AnnotatesJargon(t *testing.T) {
	out := Simplify("This role involves frontend development.")

	assert.Contains(t, out, "frontend development (simplified: creating the parts of websites and apps")
}

func TestSimplify_CaseInsensitiveMatch(t *testing.T) {
	out := Simplify("Familiarity with an API is required.")

	assert.Contains(t, out, "API (simplified: a set of rules")

	out = Simplify("Familiarity with an api is required.")
	assert.Contains(t, out, "api (simplified: a set of rules")
}

func TestSimplify_WordBoundaryRespected(t *testing.T) {
	out := Simplify("We value RAPID deployment cycles.")

	// "API" inside "RAPID" must not be annotated
	assert.NotContains(t, out, "RAPID (simplified")
	assert.NotContains(t, out, "RAP API")
	assert.Contains(t, out, "RAPID deployment (simplified:")
}

func TestSimplify_EveryOccurrenceAnnotated(t *testing.T) {
	out := Simplify("One API here. Another API there.")

	assert.Equal(t, 2, strings.Count(out, "(simplified: a set of rules"))
}

func TestSimplify_LongerPhraseWinsOverSubPhrase(t *testing.T) {
	out := Simplify("Build a REST API for us.")

	assert.Contains(t, out, "REST API (simplified: a standard way for web programs")
	// The embedded "API" must not get its own second annotation
	assert.Equal(t, 1, strings.Count(out, "(simplified:"))
}

func TestSimplify_ExplanationsNotReannotated(t *testing.T) {
	// The TypeScript explanation mentions JavaScript; that mention must not
	// itself be annotated
	out := Simplify("TypeScript experience required.")

	assert.Equal(t, 1, strings.Count(out, "(simplified:"))
}

func TestSimplify_SplitsLongSentencesAtCommas(t *testing.T) {
	sentence := "You will work closely with our product partners, collaborate daily with designers and other engineers on shared goals, and ship well tested maintainable code to our many happy customers around the world."

	out := Simplify(sentence)

	// Comma splice removed: fragments joined with single spaces
	assert.NotContains(t, out, "partners, collaborate")
	assert.Contains(t, out, "You will work closely with our product partners")
	assert.Contains(t, out, "collaborate daily with designers and other engineers on shared goals")
}

func TestSimplify_ShortSentencesUnchanged(t *testing.T) {
	in := "We build tools. They help people."

	assert.Equal(t, in, Simplify(in))
}

func TestSimplify_EmptyInput(t *testing.T) {
	assert.Equal(t, "", Simplify(""))
}

func TestSimplify_NoJargonIsNoOp(t *testing.T) {
	in := "Friendly team seeks organized person."

	assert.Equal(t, in, Simplify(in))
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Multiple terminators",
			input:    "First one. Second one! Third one?",
			expected: []string{"First one.", "Second one!", "Third one?"},
		},
		{
			name:     "Dot without following space is not a boundary",
			input:    "We use Node.js daily. Really.",
			expected: []string{"We use Node.js daily.", "Really."},
		},
		{
			name:     "Trailing text without terminator kept",
			input:    "Complete sentence. trailing fragment",
			expected: []string{"Complete sentence.", "trailing fragment"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitSentences(tt.input))
		})
	}
}
