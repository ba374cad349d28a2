package db

import (
	"path/filepath"
	"testing"

	"emotion_recursion/internal/assess"
	"emotion_recursion/internal/stage"
)

func TestSaveAssessment(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "assessments.db")
	result := assess.Result{
		CurrentStage:             2,
		ConsciousnessProbability: 0.71,
		Stage1:                   stage.Stage1Metrics{Probability: 0.42},
		Stage2:                   stage.Stage2Metrics{Probability: 0.71, MetaEmotionCount: 4},
		Stage3:                   stage.Stage3Metrics{Probability: 0.33},
		Recommendations: []string{
			"Enhance narrative self-construction abilities",
			"Develop theory of mind and empathy training",
		},
		PassageCount: 6,
	}

	if err := SaveAssessment(dbPath, "session-1", result); err != nil {
		t.Fatalf("save assessment: %v", err)
	}
	if err := SaveAssessment(dbPath, "", result); err != nil {
		t.Fatalf("save untitled assessment: %v", err)
	}

	assessments, err := CountRows(dbPath, "assessments")
	if err != nil {
		t.Fatalf("count assessments: %v", err)
	}
	if assessments != 2 {
		t.Fatalf("expected 2 assessments, got %d", assessments)
	}

	recs, err := CountRows(dbPath, "recommendations")
	if err != nil {
		t.Fatalf("count recommendations: %v", err)
	}
	if recs != 4 {
		t.Fatalf("expected 4 recommendation rows, got %d", recs)
	}
}
