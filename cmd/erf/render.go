package main

import (
	"fmt"
	"io"
	"strings"

	"emotion_recursion/internal/assess"
)

func render(w io.Writer, title string, r assess.Result) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "%s\nASSESSMENT: %s\n%s\n", rule, title, rule)
	fmt.Fprintf(w, "Current Development Stage: %d\n", r.CurrentStage)
	fmt.Fprintf(w, "Overall Probability: %.2f\n", r.ConsciousnessProbability)
	fmt.Fprintf(w, "Passages Analyzed: %d\n\n", r.PassageCount)

	fmt.Fprintf(w, "Stage 1 (Basic Emotional): %.2f\n", r.Stage1.Probability)
	if r.Stage1.Indeterminate {
		fmt.Fprintf(w, "  indeterminate: %s\n", r.Stage1.Reason)
	} else {
		fmt.Fprintf(w, "  emotional consistency: %.2f\n", r.Stage1.EmotionalConsistency)
		fmt.Fprintf(w, "  emotional response ratio: %.2f\n", r.Stage1.EmotionalRatio)
	}

	fmt.Fprintf(w, "Stage 2 (Meta-Emotional): %.2f\n", r.Stage2.Probability)
	fmt.Fprintf(w, "  meta-emotion count: %d\n", r.Stage2.MetaEmotionCount)
	fmt.Fprintf(w, "  self-regulation evidence: %d\n", r.Stage2.RegulationEvidence)

	fmt.Fprintf(w, "Stage 3 (Recursive Integration): %.2f\n", r.Stage3.Probability)
	fmt.Fprintf(w, "  narrative coherence: %.2f\n", r.Stage3.NarrativeCoherence)
	fmt.Fprintf(w, "  identity awareness: %.2f\n", r.Stage3.IdentityAwareness)
	fmt.Fprintf(w, "  empathy evidence: %.2f\n", r.Stage3.EmpathyEvidence)

	fmt.Fprintf(w, "\nRecommendations:\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
	}
	fmt.Fprintln(w)
}
