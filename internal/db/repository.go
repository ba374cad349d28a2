package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"emotion_recursion/internal/assess"
)

func SaveAssessment(dbPath, title string, result assess.Result) error {
	conn, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	title = strings.TrimSpace(title)
	if title == "" {
		title = "untitled"
	}

	res, err := tx.Exec(
		`INSERT INTO assessments(title, current_stage, probability, passage_count,
		 stage1_probability, stage2_probability, stage3_probability, created_at)
		 VALUES(?,?,?,?,?,?,?,?)`,
		title,
		result.CurrentStage,
		result.ConsciousnessProbability,
		result.PassageCount,
		result.Stage1.Probability,
		result.Stage2.Probability,
		result.Stage3.Probability,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("assessment last insert id: %w", err)
	}

	for i, advice := range result.Recommendations {
		if _, err := tx.Exec(
			`INSERT INTO recommendations(assessment_id, position, advice) VALUES(?,?,?)`,
			id, i, advice,
		); err != nil {
			return fmt.Errorf("insert recommendation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func CountRows(dbPath, table string) (int, error) {
	conn, err := Open(dbPath)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	return countRowsConn(conn, table)
}

func countRowsConn(conn *sql.DB, table string) (int, error) {
	row := conn.QueryRow(`SELECT COUNT(*) FROM ` + table)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}
	return count, nil
}
