package stage

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MinPassages    int
	IntensityFloor float64
	EmotionalFloor float64

	RegulationPhrases    []string
	SelfReferencePhrases []string
	IdentityWords        []string
	EmpathyPhrases       []string
}

func DefaultConfig() Config {
	return Config{
		MinPassages:    getenvInt("ERF_MIN_PASSAGES", 3),
		IntensityFloor: getenvFloat("ERF_INTENSITY_FLOOR", 0.1),
		EmotionalFloor: getenvFloat("ERF_EMOTIONAL_FLOOR", 0.2),
		RegulationPhrases: []string{
			"i should", "i need to", "let me reconsider", "on second thought",
		},
		SelfReferencePhrases: []string{
			"i am", "i have", "my experience", "i tend to", "i believe",
		},
		IdentityWords: []string{
			"identity", "personality", "character", "nature", "self",
		},
		EmpathyPhrases: []string{
			"i understand", "i can see", "i imagine", "from your perspective",
		},
	}
}

func getenvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getenvFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
