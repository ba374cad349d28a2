package workspace

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"emotion_recursion/internal/assess"
)

type RunReport struct {
	Title        string        `json:"title"`
	PassageCount int           `json:"passage_count"`
	Assessment   assess.Result `json:"assessment"`
}

type RunInfo struct {
	ID         string
	ReportPath string
}

// CreateRun reserves a report slot under reports/, keyed by a hash of the
// transcript title so re-running the same transcript overwrites its report.
func CreateRun(workspaceRoot, title string) (*RunInfo, error) {
	id := titleHash(title)
	reportsDir := filepath.Join(workspaceRoot, "reports")
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &RunInfo{
		ID:         id,
		ReportPath: filepath.Join(reportsDir, id+".json"),
	}, nil
}

func SaveReport(path string, report RunReport) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func titleHash(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])[:12]
}
