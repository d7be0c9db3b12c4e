package ingest

import (
	"fmt"
	"time"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/google/uuid"
)

// ConvertedEntry pairs a domain entry with the tag ids to link after insert.
type ConvertedEntry struct {
	Entry  domain.TimeEntry
	TagIDs []string
}

// Convert turns a validated batch into domain entries ready for insert.
// IDs are generated here; now stamps created/updated.
func Convert(batch Batch, now time.Time) ([]ConvertedEntry, error) {
	converted := make([]ConvertedEntry, 0, len(batch))
	for i, payload := range batch {
		start, err := time.Parse(time.RFC3339, payload.StartTime)
		if err != nil {
			return nil, fmt.Errorf("entries[%d].start_time: %w", i, err)
		}

		entry := domain.TimeEntry{
			ID:          uuid.New().String(),
			WorkspaceID: payload.WorkspaceID,
			UserID:      payload.UserID,
			ProjectID:   payload.ProjectID,
			StartTime:   start,
			Billable:    domain.BoolFromPtrWithDefault(true, payload.Billable),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if payload.Description != nil {
			entry.Description = *payload.Description
		}
		if payload.EndTime != nil {
			end, err := time.Parse(time.RFC3339, *payload.EndTime)
			if err != nil {
				return nil, fmt.Errorf("entries[%d].end_time: %w", i, err)
			}
			entry.EndTime = &end
		}

		converted = append(converted, ConvertedEntry{Entry: entry, TagIDs: payload.TagIDs})
	}
	return converted, nil
}
