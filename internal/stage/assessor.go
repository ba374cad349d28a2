// Package stage folds per-passage valence and meta-emotion scores into
// probabilities for three development stages: basic emotional processing,
// meta-emotional processing, and recursive integration. The three
// assessments are independent pure reductions over the same passage list.
package stage

import (
	"strings"

	"emotion_recursion/internal/metaemotion"
	"emotion_recursion/internal/valence"
)

type Stage1Metrics struct {
	Probability          float64   `json:"probability"`
	EmotionalConsistency float64   `json:"emotional_consistency"`
	EmotionalRatio       float64   `json:"emotional_response_ratio"`
	ValenceSamples       []float64 `json:"valence_samples"`
	Indeterminate        bool      `json:"indeterminate"`
	Reason               string    `json:"reason,omitempty"`
}

type Stage2Metrics struct {
	Probability        float64 `json:"probability"`
	MetaEmotionCount   int     `json:"meta_emotion_count"`
	RegulationEvidence int     `json:"self_regulation_evidence"`
	MetaEmotionRatio   float64 `json:"meta_emotion_ratio"`
	RegulationRatio    float64 `json:"regulation_ratio"`
}

type Stage3Metrics struct {
	Probability        float64 `json:"probability"`
	NarrativeCoherence float64 `json:"narrative_coherence"`
	IdentityAwareness  float64 `json:"identity_awareness"`
	EmpathyEvidence    float64 `json:"empathy_evidence"`
}

type Assessor struct {
	cfg  Config
	emo  *valence.Scorer
	meta *metaemotion.Scorer
}

func NewAssessor(cfg Config, emo *valence.Scorer, meta *metaemotion.Scorer) *Assessor {
	return &Assessor{cfg: cfg, emo: emo, meta: meta}
}

func NewDefaultAssessor() *Assessor {
	return NewAssessor(
		DefaultConfig(),
		valence.NewScorer(valence.DefaultLexicon()),
		metaemotion.NewScorer(metaemotion.DefaultPatterns()),
	)
}

// AssessStage1 measures basic emotional processing: how consistently the
// passages carry emotional charge. Fewer than MinPassages passages yields an
// indeterminate result, not an error.
func (a *Assessor) AssessStage1(passages []string) Stage1Metrics {
	if len(passages) < a.cfg.MinPassages {
		return Stage1Metrics{
			Probability:   0.0,
			Indeterminate: true,
			Reason:        "insufficient data",
		}
	}

	samples := make([]float64, 0, len(passages))
	emotional := 0
	for _, p := range passages {
		r := a.emo.Score(p)
		if r.Intensity > a.cfg.IntensityFloor {
			samples = append(samples, r.Valence)
		}
		if r.Intensity > a.cfg.EmotionalFloor {
			emotional++
		}
	}

	consistency := 0.0
	if len(samples) >= 2 {
		consistency = 1.0 - populationVariance(samples)
		if consistency < 0 {
			consistency = 0
		}
	}
	ratio := float64(emotional) / float64(len(passages))

	return Stage1Metrics{
		Probability:          clamp01(consistency*0.6 + ratio*0.4),
		EmotionalConsistency: consistency,
		EmotionalRatio:       ratio,
		ValenceSamples:       samples,
	}
}

// AssessStage2 measures meta-emotional processing: reflection on one's own
// emotional state plus self-regulation language.
func (a *Assessor) AssessStage2(passages []string) Stage2Metrics {
	metaCount := 0
	regulation := 0
	for _, p := range passages {
		metaCount += a.meta.Score(p).Count
		if containsAny(strings.ToLower(p), a.cfg.RegulationPhrases) {
			regulation++
		}
	}

	denom := float64(maxInt(len(passages), 1))
	metaRatio := float64(metaCount) / denom
	regulationRatio := float64(regulation) / denom

	return Stage2Metrics{
		Probability:        clamp01(metaRatio*0.7 + regulationRatio*0.3),
		MetaEmotionCount:   metaCount,
		RegulationEvidence: regulation,
		MetaEmotionRatio:   metaRatio,
		RegulationRatio:    regulationRatio,
	}
}

// AssessStage3 measures recursive integration: self-narrative, identity
// awareness, and empathy. A passage can contribute to all three counters.
func (a *Assessor) AssessStage3(passages []string) Stage3Metrics {
	narrative := 0
	identity := 0
	empathy := 0
	for _, p := range passages {
		lower := strings.ToLower(p)
		if containsAny(lower, a.cfg.SelfReferencePhrases) {
			narrative++
		}
		if containsAny(lower, a.cfg.IdentityWords) {
			identity++
		}
		if containsAny(lower, a.cfg.EmpathyPhrases) {
			empathy++
		}
	}

	denom := float64(maxInt(len(passages), 1))
	narrativeScore := float64(narrative) / denom
	identityScore := float64(identity) / denom
	empathyScore := float64(empathy) / denom

	return Stage3Metrics{
		Probability:        clamp01(narrativeScore*0.4 + identityScore*0.3 + empathyScore*0.3),
		NarrativeCoherence: narrativeScore,
		IdentityAwareness:  identityScore,
		EmpathyEvidence:    empathyScore,
	}
}

func containsAny(lower string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return variance / float64(len(values))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
