package stage

import (
	"math"
	"testing"
)

func TestStage1InsufficientData(t *testing.T) {
	a := NewDefaultAssessor()
	m := a.AssessStage1([]string{"I feel happy", "I feel sad"})
	if !m.Indeterminate {
		t.Fatal("expected indeterminate result for fewer than 3 passages")
	}
	if m.Probability != 0.0 {
		t.Fatalf("expected probability 0.0, got %f", m.Probability)
	}
	if m.Reason != "insufficient data" {
		t.Fatalf("unexpected reason: %q", m.Reason)
	}
}

func TestStage1WeakSignalScoresZero(t *testing.T) {
	a := NewDefaultAssessor()
	// One lexicon hit per passage gives intensity exactly 0.1, which clears
	// neither the sample floor nor the emotional-response floor.
	m := a.AssessStage1([]string{"happy", "happy", "happy"})
	if m.Indeterminate {
		t.Fatal("expected determinate result for 3 passages")
	}
	if m.Probability != 0.0 {
		t.Fatalf("expected probability 0.0, got %f", m.Probability)
	}
	if m.EmotionalConsistency != 0.0 {
		t.Fatalf("expected consistency 0.0, got %f", m.EmotionalConsistency)
	}
	if len(m.ValenceSamples) != 0 {
		t.Fatalf("expected no valence samples, got %d", len(m.ValenceSamples))
	}
}

func TestStage1ConsistentEmotionScoresHigh(t *testing.T) {
	a := NewDefaultAssessor()
	passages := []string{
		"I feel happy, grateful and delighted today.",
		"Still happy, grateful and delighted about it.",
		"Happy, grateful, delighted - nothing changed.",
	}
	m := a.AssessStage1(passages)
	if len(m.ValenceSamples) != 3 {
		t.Fatalf("expected 3 valence samples, got %d", len(m.ValenceSamples))
	}
	if m.EmotionalConsistency != 1.0 {
		t.Fatalf("expected perfect consistency, got %f", m.EmotionalConsistency)
	}
	if m.EmotionalRatio != 1.0 {
		t.Fatalf("expected full emotional ratio, got %f", m.EmotionalRatio)
	}
	if m.Probability != 1.0 {
		t.Fatalf("expected probability 1.0, got %f", m.Probability)
	}
}

func TestStage1MixedValenceLowersConsistency(t *testing.T) {
	a := NewDefaultAssessor()
	passages := []string{
		"I feel happy, grateful and delighted.",
		"Everything is sad, difficult and problematic.",
		"Happy and grateful again, even delighted.",
	}
	m := a.AssessStage1(passages)
	if m.EmotionalConsistency >= 1.0 {
		t.Fatalf("expected variance to lower consistency, got %f", m.EmotionalConsistency)
	}
	if m.Probability < 0.0 || m.Probability > 1.0 {
		t.Fatalf("probability out of range: %f", m.Probability)
	}
}

func TestStage2RegulationOnly(t *testing.T) {
	a := NewDefaultAssessor()
	passages := []string{
		"I should slow down here.",
		"I need to check the assumptions.",
		"On second thought, the plan holds.",
		"The data arrived on time.",
		"Nothing else changed.",
	}
	m := a.AssessStage2(passages)
	if m.MetaEmotionCount != 0 {
		t.Fatalf("expected no meta-emotion matches, got %d", m.MetaEmotionCount)
	}
	if m.RegulationEvidence != 3 {
		t.Fatalf("expected 3 regulation passages, got %d", m.RegulationEvidence)
	}
	if math.Abs(m.RegulationRatio-0.6) > 1e-9 {
		t.Fatalf("expected regulation ratio 0.6, got %f", m.RegulationRatio)
	}
	if math.Abs(m.Probability-0.18) > 1e-9 {
		t.Fatalf("expected probability 0.18, got %f", m.Probability)
	}
}

func TestStage2EmptyPassagesDegradeToZero(t *testing.T) {
	a := NewDefaultAssessor()
	m := a.AssessStage2(nil)
	if m.Probability != 0.0 || m.MetaEmotionRatio != 0.0 || m.RegulationRatio != 0.0 {
		t.Fatalf("expected zero metrics for empty input, got %+v", m)
	}
}

func TestStage3CountersAreIndependent(t *testing.T) {
	a := NewDefaultAssessor()
	passages := []string{
		"I am a careful reader.",
		"I believe the plan works.",
		"Questions of identity come up often.",
		"I understand why you paused.",
	}
	m := a.AssessStage3(passages)
	if math.Abs(m.NarrativeCoherence-0.5) > 1e-9 {
		t.Fatalf("expected narrative 0.5, got %f", m.NarrativeCoherence)
	}
	if math.Abs(m.IdentityAwareness-0.25) > 1e-9 {
		t.Fatalf("expected identity 0.25, got %f", m.IdentityAwareness)
	}
	if math.Abs(m.EmpathyEvidence-0.25) > 1e-9 {
		t.Fatalf("expected empathy 0.25, got %f", m.EmpathyEvidence)
	}
	want := 0.5*0.4 + 0.25*0.3 + 0.25*0.3
	if math.Abs(m.Probability-want) > 1e-9 {
		t.Fatalf("expected probability %f, got %f", want, m.Probability)
	}
}

func TestStage3PassageCanFeedAllCounters(t *testing.T) {
	a := NewDefaultAssessor()
	passages := []string{
		"I am aware of my identity and I understand your view.",
	}
	m := a.AssessStage3(passages)
	if m.NarrativeCoherence != 1.0 || m.IdentityAwareness != 1.0 || m.EmpathyEvidence != 1.0 {
		t.Fatalf("expected one passage to feed all counters, got %+v", m)
	}
	if m.Probability != 1.0 {
		t.Fatalf("expected probability 1.0, got %f", m.Probability)
	}
}
