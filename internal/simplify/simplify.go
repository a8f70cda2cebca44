package simplify

import (
	"regexp"
	"sort"
	"strings"
)

// longSentenceTokens is the token count above which a sentence gets split at
// comma boundaries
const longSentenceTokens = 20

var (
	termPattern  *regexp.Regexp
	explanations map[string]string
)

func init() {
	// One combined alternation keeps annotation a single pass over the input,
	// so inserted explanations are never themselves re-annotated. Longer
	// phrases come first so "REST API" wins over "API" at the same position.
	terms := make([]string, 0, len(jargonTerms))
	explanations = make(map[string]string, len(jargonTerms))
	for term, explanation := range jargonTerms {
		terms = append(terms, term)
		explanations[strings.ToLower(term)] = explanation
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})

	quoted := make([]string, 0, len(terms))
	for _, term := range terms {
		quoted = append(quoted, regexp.QuoteMeta(term))
	}
	termPattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Simplify rewrites a document for readability. Every case-insensitive,
// word-boundary occurrence of a known jargon phrase is annotated inline as
// "<phrase> (simplified: <explanation>)", then sentences longer than 20 tokens
// are split at comma boundaries. The result joins all sentences and fragments
// with single spaces in original order. Simplify never fails; text without
// jargon or long sentences passes through mostly unchanged.
func Simplify(document string) string {
	annotated := annotateJargon(document)

	var fragments []string
	for _, sentence := range splitSentences(annotated) {
		if len(strings.Fields(sentence)) > longSentenceTokens {
			for _, part := range strings.Split(sentence, ", ") {
				if part = strings.TrimSpace(part); part != "" {
					fragments = append(fragments, part)
				}
			}
			continue
		}
		if sentence = strings.TrimSpace(sentence); sentence != "" {
			fragments = append(fragments, sentence)
		}
	}

	return strings.Join(fragments, " ")
}

// annotateJargon appends a plain-language explanation to every jargon match.
// Word boundaries prevent partial-word hits ("API" inside "RAPID").
func annotateJargon(text string) string {
	return termPattern.ReplaceAllStringFunc(text, func(match string) string {
		explanation, ok := explanations[strings.ToLower(match)]
		if !ok {
			return match
		}
		return match + " (simplified: " + explanation + ")"
	})
}

// splitSentences performs coarse sentence segmentation: a sentence ends at
// '.', '!' or '?' followed by whitespace. Good enough for job postings;
// abbreviations like "Node.js" survive because no whitespace follows the dot.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
			continue
		}
		if i+1 < len(runes) && runes[i+1] != ' ' && runes[i+1] != '\n' && runes[i+1] != '\t' {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
