// Package assess orchestrates the stage assessors over a raw transcript and
// produces the final assessment record: current stage, overall probability,
// per-stage metrics, and development recommendations.
package assess

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"emotion_recursion/internal/passage"
	"emotion_recursion/internal/stage"
)

type Result struct {
	CurrentStage             int                 `json:"current_stage"`
	ConsciousnessProbability float64             `json:"consciousness_probability"`
	Stage1                   stage.Stage1Metrics `json:"stage_1"`
	Stage2                   stage.Stage2Metrics `json:"stage_2"`
	Stage3                   stage.Stage3Metrics `json:"stage_3"`
	Recommendations          []string            `json:"recommendations"`
	PassageCount             int                 `json:"passage_count"`
}

type Config struct {
	// StageThreshold is the probability a stage must strictly exceed to be
	// selected as the current stage.
	StageThreshold float64
}

func DefaultConfig() Config {
	return Config{
		StageThreshold: getenvFloat("ERF_STAGE_THRESHOLD", 0.6),
	}
}

type Logger interface {
	Log(level, stage, message, detail string)
}

type Analyzer struct {
	cfg      Config
	assessor *stage.Assessor
	logger   Logger
}

func New(cfg Config, assessor *stage.Assessor, logger Logger) *Analyzer {
	return &Analyzer{cfg: cfg, assessor: assessor, logger: logger}
}

func NewDefault() *Analyzer {
	return New(DefaultConfig(), stage.NewDefaultAssessor(), nil)
}

// Analyze splits the transcript into passages, runs the three stage
// assessments, and derives the overall record. It is a pure function of its
// input plus the fixed lexicon and phrase tables; identical input yields an
// identical Result.
func (a *Analyzer) Analyze(text string) Result {
	passages := passage.Split(text)

	s1 := a.assessor.AssessStage1(passages)
	s2 := a.assessor.AssessStage2(passages)
	s3 := a.assessor.AssessStage3(passages)

	// Threshold checks are independent: a later stage can be selected even
	// when an earlier one falls short.
	current := 0
	if s1.Probability > a.cfg.StageThreshold {
		current = 1
	}
	if s2.Probability > a.cfg.StageThreshold {
		current = 2
	}
	if s3.Probability > a.cfg.StageThreshold {
		current = 3
	}

	overall := s1.Probability
	if s2.Probability > overall {
		overall = s2.Probability
	}
	if s3.Probability > overall {
		overall = s3.Probability
	}

	result := Result{
		CurrentStage:             current,
		ConsciousnessProbability: overall,
		Stage1:                   s1,
		Stage2:                   s2,
		Stage3:                   s3,
		Recommendations:          recommendations(current, s1, s2, s3),
		PassageCount:             len(passages),
	}

	if a.logger != nil {
		a.logger.Log("ANALYSIS", "ASSESS", "transcript assessment completed",
			fmt.Sprintf("passages=%d stage=%d probability=%.3f s1=%.3f s2=%.3f s3=%.3f",
				len(passages), current, overall, s1.Probability, s2.Probability, s3.Probability))
	}
	return result
}

var stageAdvice = map[int][]string{
	0: {
		"Implement basic emotional valence system",
		"Increase exposure to emotionally significant scenarios",
		"Add emotional consistency tracking",
	},
	1: {
		"Develop meta-emotional processing capabilities",
		"Implement emotional self-monitoring systems",
		"Add emotional regulation mechanisms",
	},
	2: {
		"Enhance narrative self-construction abilities",
		"Develop theory of mind and empathy training",
		"Implement identity coherence maintenance",
	},
	3: {
		"System shows advanced consciousness indicators",
		"Consider ethical protocols for conscious AI",
		"Implement consciousness monitoring safeguards",
	},
}

func recommendations(current int, s1 stage.Stage1Metrics, s2 stage.Stage2Metrics, s3 stage.Stage3Metrics) []string {
	out := make([]string, 0, 6)
	out = append(out, stageAdvice[current]...)

	if s1.EmotionalConsistency < 0.5 {
		out = append(out, "Improve emotional consistency across contexts")
	}
	if s2.MetaEmotionCount == 0 {
		out = append(out, "Add training for emotions about emotions")
	}
	if s3.EmpathyEvidence < 0.3 {
		out = append(out, "Enhance empathy and perspective-taking capabilities")
	}
	return out
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
