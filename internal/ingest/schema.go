// Package ingest accepts batches of time entries from external systems
// (automation pipelines, migration jobs) and loads them into the store.
// A batch is validated as a whole before any insert: one malformed record
// rejects the entire batch.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// EntryPayload is the wire shape of one ingested time entry.
type EntryPayload struct {
	WorkspaceID string   `json:"workspace_id"`
	UserID      string   `json:"user_id"`
	ProjectID   *string  `json:"project_id,omitempty"`
	Description *string  `json:"description,omitempty"`
	StartTime   string   `json:"start_time"`
	EndTime     *string  `json:"end_time,omitempty"`
	Billable    *bool    `json:"billable,omitempty"`
	TagIDs      []string `json:"tag_ids,omitempty"`
}

// Batch is the top-level JSON structure: an array of entries.
type Batch []EntryPayload

// LoadBatch reads and parses a batch JSON file.
func LoadBatch(path string) (Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBatch(data)
}

// ParseBatch parses raw JSON into a Batch.
func ParseBatch(data []byte) (Batch, error) {
	var batch Batch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}
	return batch, nil
}
