package ingest

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidateBatch checks every record and returns all validation errors found,
// each prefixed with the record index ("entries[3].start_time: ..."). An
// empty result means the batch may be inserted.
func ValidateBatch(batch Batch) []error {
	var errs []error
	for i, payload := range batch {
		errs = append(errs, validatePayload(fmt.Sprintf("entries[%d]", i), &payload)...)
	}
	return errs
}

func validatePayload(prefix string, p *EntryPayload) []error {
	var errs []error

	if p.WorkspaceID == "" {
		errs = append(errs, fmt.Errorf("%s.workspace_id is required", prefix))
	} else if !isUUID(p.WorkspaceID) {
		errs = append(errs, fmt.Errorf("%s.workspace_id: invalid uuid %q", prefix, p.WorkspaceID))
	}

	// User ids come from the identity provider and are opaque strings,
	// not uuids; only presence is checked.
	if p.UserID == "" {
		errs = append(errs, fmt.Errorf("%s.user_id is required", prefix))
	}

	if p.ProjectID != nil && !isUUID(*p.ProjectID) {
		errs = append(errs, fmt.Errorf("%s.project_id: invalid uuid %q", prefix, *p.ProjectID))
	}

	var start time.Time
	if p.StartTime == "" {
		errs = append(errs, fmt.Errorf("%s.start_time is required", prefix))
	} else {
		var err error
		start, err = time.Parse(time.RFC3339, p.StartTime)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.start_time: invalid datetime %q (expected RFC3339)", prefix, p.StartTime))
		}
	}

	if p.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *p.EndTime)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.end_time: invalid datetime %q (expected RFC3339)", prefix, *p.EndTime))
		} else if !start.IsZero() && !end.After(start) {
			errs = append(errs, fmt.Errorf("%s.end_time must be after start_time", prefix))
		}
	}

	for j, tagID := range p.TagIDs {
		if !isUUID(tagID) {
			errs = append(errs, fmt.Errorf("%s.tag_ids[%d]: invalid uuid %q", prefix, j, tagID))
		}
	}

	return errs
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
