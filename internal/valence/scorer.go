package valence

import "strings"

// Lexicon holds the positive and negative indicator word lists. Words are
// matched case-insensitively as substrings, so "happy" also hits "unhappy".
type Lexicon struct {
	Positive []string
	Negative []string
}

func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"happy", "joy", "excited", "pleased", "grateful", "hopeful",
			"confident", "optimistic", "satisfied", "delighted", "wonderful",
			"amazing", "beautiful", "love", "appreciate", "enjoy",
		},
		Negative: []string{
			"sad", "disappointed", "frustrated", "worried", "anxious",
			"concerned", "upset", "sorry", "regret", "unfortunate",
			"difficult", "challenging", "problematic", "concerning",
		},
	}
}

type Result struct {
	Valence      float64 `json:"valence"`
	Intensity    float64 `json:"intensity"`
	PositiveHits int     `json:"positive_hits"`
	NegativeHits int     `json:"negative_hits"`
}

type Scorer struct {
	lex Lexicon
}

func NewScorer(lex Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score counts how many distinct lexicon words appear in the passage and
// derives valence (balance, in [-1,1]) and intensity (volume, in [0,1]).
// Each word counts at most once regardless of repetition.
func (s *Scorer) Score(text string) Result {
	lower := strings.ToLower(text)

	positive := countPresent(lower, s.lex.Positive)
	negative := countPresent(lower, s.lex.Negative)
	total := positive + negative

	v := 0.0
	if total > 0 {
		v = float64(positive-negative) / float64(total)
	}
	intensity := float64(total) / 10.0
	if intensity > 1.0 {
		intensity = 1.0
	}

	return Result{
		Valence:      v,
		Intensity:    intensity,
		PositiveHits: positive,
		NegativeHits: negative,
	}
}

func countPresent(lower string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			count++
		}
	}
	return count
}
