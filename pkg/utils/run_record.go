/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: run_record.go
Description: Writes run records to a metrics directory. Each record is a JSON file named
by timestamp, command, version and run ID under a per-command subdirectory.
*/

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord summarizes one command run
type RunRecord struct {
	ID        string        `json:"id"`
	Command   string        `json:"command"`
	Version   string        `json:"version"`
	Source    string        `json:"source"`
	Rows      int           `json:"rows"`
	Columns   int           `json:"columns"`
	Described []string      `json:"described"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}

// NewRunRecord starts a record with a fresh ID and the current time
func NewRunRecord(command, version, source string) *RunRecord {
	return &RunRecord{
		ID:        uuid.New().String(),
		Command:   command,
		Version:   version,
		Source:    source,
		StartedAt: time.Now(),
	}
}

// WriteRunRecord writes record under dir/<command>/ and returns the file path
func WriteRunRecord(dir string, record *RunRecord) (string, error) {
	recordDir := filepath.Join(dir, record.Command)
	if err := os.MkdirAll(recordDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create metrics directory: %w", err)
	}

	// 2024-06-11_01-30-00_describe_v0.1.0_1b4e28ba.json
	timestamp := record.StartedAt.Format("2006-01-02_15-04-05")
	shortID := record.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	filename := fmt.Sprintf("%s_%s_v%s_%s.json", timestamp, record.Command, record.Version, shortID)
	filePath := filepath.Join(recordDir, filename)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run record: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write metrics file: %w", err)
	}

	return filePath, nil
}
