package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportantWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"stopwords and short words", "The cat is on the mat", []string{"cat", "mat"}},
		{"empty", "", []string{}},
		{"all stopwords", "the is of", []string{}},
		{"duplicates kept", "Delhi delhi DELHI", []string{"delhi", "delhi", "delhi"}},
		{"order kept", "zebra apple mango", []string{"zebra", "apple", "mango"}},
		{"punctuation stripped", "New Delhi, India.", []string{"new", "delhi", "india"}},
		{"two letter tokens dropped", "go is ok but fun", []string{"but", "fun"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImportantWords(tt.input))
		})
	}
}

func TestImportantWordsWith(t *testing.T) {
	custom := NewStopwords("Capital", "CITY")
	assert.Equal(t, []string{"delhi"}, ImportantWordsWith("capital city delhi", custom))

	// Without a set only the length filter applies.
	assert.Equal(t, []string{"the", "cat"}, ImportantWordsWith("the cat is", nil))
}

func TestDefaultStopwordsIsACopy(t *testing.T) {
	sw := DefaultStopwords()
	delete(sw, "the")

	assert.True(t, DefaultStopwords().Has("the"))
	assert.Len(t, DefaultStopwords(), 27)
}
