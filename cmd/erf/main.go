package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"emotion_recursion/internal/assess"
	"emotion_recursion/internal/db"
	"emotion_recursion/internal/ingest"
	"emotion_recursion/internal/pipeline"
	"emotion_recursion/internal/workspace"
)

func main() {
	jsonOut := flag.Bool("json", false, "emit the assessment as JSON")
	dbPath := flag.String("db", "", "sqlite file to persist assessments into")
	workers := flag.Int("workers", 0, "worker count for batch analysis (0 = NumCPU)")
	sample := flag.Bool("sample", false, "analyze the built-in sample transcripts")
	saveReports := flag.Bool("reports", false, "write per-run JSON reports into the workspace")
	flag.Parse()

	analyzer := assess.NewDefault()

	var wsRoot string
	if *saveReports {
		root, err := workspace.EnsureDefault()
		if err != nil {
			log.Fatalf("workspace initialization failed: %v", err)
		}
		wsRoot = root
	}

	if *sample {
		for _, s := range sampleTranscripts {
			runOne(analyzer, s.Title, s.Text, *jsonOut, *dbPath, wsRoot)
		}
		return
	}

	paths := flag.Args()
	if len(paths) == 0 {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %v", err)
		}
		runOne(analyzer, "stdin", string(raw), *jsonOut, *dbPath, wsRoot)
		return
	}

	var mu sync.Mutex
	errs := pipeline.Run(paths, *workers, func(path string) error {
		t, err := ingest.ParseFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		mu.Lock()
		defer mu.Unlock()
		runOne(analyzer, t.Title, t.Text, *jsonOut, *dbPath, wsRoot)
		return nil
	})
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	if len(errs) > 0 {
		os.Exit(1)
	}
}

func runOne(analyzer *assess.Analyzer, title, text string, jsonOut bool, dbPath, wsRoot string) {
	result := analyzer.Analyze(text)

	if jsonOut {
		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("marshal result: %v", err)
		}
		fmt.Println(string(raw))
	} else {
		render(os.Stdout, title, result)
	}

	if dbPath != "" {
		if err := db.SaveAssessment(dbPath, title, result); err != nil {
			log.Fatalf("persist assessment: %v", err)
		}
	}
	if wsRoot != "" {
		run, err := workspace.CreateRun(wsRoot, title)
		if err != nil {
			log.Fatalf("create run: %v", err)
		}
		report := workspace.RunReport{
			Title:        title,
			PassageCount: result.PassageCount,
			Assessment:   result,
		}
		if err := workspace.SaveReport(run.ReportPath, report); err != nil {
			log.Fatalf("save report: %v", err)
		}
	}
}
