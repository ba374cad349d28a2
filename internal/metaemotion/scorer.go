package metaemotion

import "regexp"

// The templates capture language that reflects on the speaker's own
// emotional state ("emotion about emotion"). Order matters: matches are
// reported in pattern order, then left-to-right within a pattern.
func DefaultPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)I feel .* about .*feeling`),
		regexp.MustCompile(`(?i)my .* response to`),
		regexp.MustCompile(`(?i)I notice I.*emotional`),
		regexp.MustCompile(`(?i)reflecting on my.*emotion`),
		regexp.MustCompile(`(?i)I'm .* about how I`),
		regexp.MustCompile(`(?i)my tendency to feel`),
	}
}

type Result struct {
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
	HasMeta bool     `json:"has_meta"`
}

type Scorer struct {
	patterns []*regexp.Regexp
}

func NewScorer(patterns []*regexp.Regexp) *Scorer {
	return &Scorer{patterns: patterns}
}

// Score counts every match of every pattern; a passage may match several
// patterns and each match is counted separately.
func (s *Scorer) Score(text string) Result {
	count := 0
	var matches []string
	for _, re := range s.patterns {
		found := re.FindAllString(text, -1)
		count += len(found)
		matches = append(matches, found...)
	}
	return Result{
		Count:   count,
		Matches: matches,
		HasMeta: count > 0,
	}
}
