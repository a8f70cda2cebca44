package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		user     []string
		expected int
	}{
		{
			name:     "Empty required yields zero",
			required: []string{},
			user:     []string{"python"},
			expected: 0,
		},
		{
			name:     "Empty user yields zero",
			required: []string{"python"},
			user:     []string{},
			expected: 0,
		},
		{
			name:     "Both empty yields zero",
			required: nil,
			user:     nil,
			expected: 0,
		},
		{
			name:     "Exact single match",
			required: []string{"python"},
			user:     []string{"python"},
			expected: 100,
		},
		{
			name:     "Half matched",
			required: []string{"python", "java"},
			user:     []string{"python"},
			expected: 50,
		},
		{
			name:     "Case insensitive",
			required: []string{"python"},
			user:     []string{"PYTHON"},
			expected: 100,
		},
		{
			name:     "Substring containment either direction",
			required: []string{"javascript", "restful api"},
			user:     []string{"java", "api"},
			expected: 100,
		},
		{
			name:     "No overlap",
			required: []string{"cobol", "fortran"},
			user:     []string{"python", "react"},
			expected: 0,
		},
		{
			name:     "Truncated not rounded",
			required: []string{"python", "java", "sql"},
			user:     []string{"python"},
			expected: 33,
		},
		{
			name:     "Two of three truncates to 66",
			required: []string{"python", "java", "sql"},
			user:     []string{"python", "sql"},
			expected: 66,
		},
		{
			name:     "User skill counts once against multiple required",
			required: []string{"java", "javascript"},
			user:     []string{"java"},
			expected: 50,
		},
		{
			name:     "Score above 100 is preserved",
			required: []string{"java"},
			user:     []string{"java", "javascript", "java ee"},
			expected: 300,
		},
		{
			name:     "Blank user entries ignored",
			required: []string{"python"},
			user:     []string{"", "   ", "python"},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.required, tt.user))
		})
	}
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	required := []string{"Python", "SQL"}
	user := []string{"PYTHON"}

	Score(required, user)

	assert.Equal(t, []string{"Python", "SQL"}, required)
	assert.Equal(t, []string{"PYTHON"}, user)
}
