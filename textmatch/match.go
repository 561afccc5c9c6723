package textmatch

// DefaultMinRatio is the share of reference important words a candidate
// must contain to count as a match.
const DefaultMinRatio = 0.6

// Policy holds the tunables of a shallow match. The zero value uses
// DefaultMinRatio and the default stopwords.
type Policy struct {
	MinRatio  float64
	Stopwords Stopwords
}

// IsMatch reports whether candidate covers at least minRatio of the
// important words of reference, using the default stopwords.
func IsMatch(reference, candidate string, minRatio float64) bool {
	ratio, ok := Policy{}.Coverage(reference, candidate)
	return ok && ratio >= minRatio
}

// Match applies the policy to reference and candidate.
func (p Policy) Match(reference, candidate string) bool {
	ratio, ok := p.Coverage(reference, candidate)
	return ok && ratio >= p.minRatio()
}

// Coverage returns the share of reference important words found in
// candidate. Each occurrence of a reference word counts separately while
// candidate words are compared as a set. ok is false when either side has no
// important words, in which case the answer cannot be judged.
func (p Policy) Coverage(reference, candidate string) (ratio float64, ok bool) {
	stopwords := p.Stopwords
	if stopwords == nil {
		stopwords = DefaultStopwords()
	}

	refWords := ImportantWordsWith(reference, stopwords)
	candWords := ImportantWordsWith(candidate, stopwords)
	if len(refWords) == 0 || len(candWords) == 0 {
		return 0, false
	}

	candSet := make(map[string]struct{}, len(candWords))
	for _, w := range candWords {
		candSet[w] = struct{}{}
	}

	matched := 0
	for _, w := range refWords {
		if _, found := candSet[w]; found {
			matched++
		}
	}
	return float64(matched) / float64(len(refWords)), true
}

func (p Policy) minRatio() float64 {
	if p.MinRatio <= 0 {
		return DefaultMinRatio
	}
	return p.MinRatio
}
