package textmatch

import "strings"

// MinWordLength is the shortest token kept by ImportantWords.
const MinWordLength = 3

var defaultStopwords = []string{
	"the", "is", "am", "are", "a", "an", "of", "to", "in", "on",
	"and", "or", "for", "with", "by", "at", "from", "that", "this",
	"it", "as", "be", "was", "were", "has", "have", "had",
}

// Stopwords is a set of tokens ignored when extracting important words.
type Stopwords map[string]struct{}

// NewStopwords builds a set from words. Words are normalized first so
// callers may pass them in any case.
func NewStopwords(words ...string) Stopwords {
	set := make(Stopwords, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// DefaultStopwords returns a fresh copy of the built-in stopword set.
func DefaultStopwords() Stopwords {
	return NewStopwords(defaultStopwords...)
}

// Has reports whether word is a stopword.
func (s Stopwords) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// ImportantWords returns the tokens of Normalize(s) that are at least
// MinWordLength characters long and not in the default stopword set.
// Order and duplicates are preserved.
func ImportantWords(s string) []string {
	return ImportantWordsWith(s, DefaultStopwords())
}

// ImportantWordsWith is ImportantWords with a caller supplied stopword set.
// A nil set filters on length only.
func ImportantWordsWith(s string, stopwords Stopwords) []string {
	normalized := Normalize(s)
	if normalized == "" {
		return []string{}
	}

	tokens := strings.Split(normalized, " ")
	words := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if len(w) < MinWordLength || stopwords.Has(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}
