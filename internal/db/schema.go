package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS assessments (
    id INTEGER PRIMARY KEY,
    title TEXT,
    current_stage INTEGER,
    probability REAL,
    passage_count INTEGER,
    stage1_probability REAL,
    stage2_probability REAL,
    stage3_probability REAL,
    created_at TEXT
);

CREATE TABLE IF NOT EXISTS recommendations (
    id INTEGER PRIMARY KEY,
    assessment_id INTEGER,
    position INTEGER,
    advice TEXT
);
`

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(SchemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}
