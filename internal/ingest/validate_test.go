package ingest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func validPayload() EntryPayload {
	return EntryPayload{
		WorkspaceID: uuid.New().String(),
		UserID:      "user-1",
		StartTime:   "2025-03-10T09:00:00Z",
		EndTime:     strp("2025-03-10T10:30:00Z"),
	}
}

func TestValidateBatch_Valid(t *testing.T) {
	batch := Batch{validPayload(), validPayload()}
	assert.Empty(t, ValidateBatch(batch))
}

func TestValidateBatch_MissingRequired(t *testing.T) {
	p := validPayload()
	p.WorkspaceID = ""
	p.UserID = ""
	p.StartTime = ""

	errs := ValidateBatch(Batch{p})
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "entries[0].workspace_id is required")
	assert.Contains(t, errs[1].Error(), "entries[0].user_id is required")
	assert.Contains(t, errs[2].Error(), "entries[0].start_time is required")
}

func TestValidateBatch_BadUUIDs(t *testing.T) {
	p := validPayload()
	p.WorkspaceID = "not-a-uuid"
	p.ProjectID = strp("also-bad")
	p.TagIDs = []string{uuid.New().String(), "nope"}

	errs := ValidateBatch(Batch{p})
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "workspace_id: invalid uuid")
	assert.Contains(t, errs[1].Error(), "project_id: invalid uuid")
	assert.Contains(t, errs[2].Error(), "tag_ids[1]: invalid uuid")
}

func TestValidateBatch_BadDatetimes(t *testing.T) {
	p := validPayload()
	p.StartTime = "2025-03-10"
	p.EndTime = strp("yesterday")

	errs := ValidateBatch(Batch{p})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "start_time: invalid datetime")
	assert.Contains(t, errs[1].Error(), "end_time: invalid datetime")
}

func TestValidateBatch_EndNotAfterStart(t *testing.T) {
	p := validPayload()
	p.EndTime = strp(p.StartTime)

	errs := ValidateBatch(Batch{p})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "end_time must be after start_time")

	p.EndTime = strp("2025-03-10T08:59:59Z")
	errs = ValidateBatch(Batch{p})
	require.Len(t, errs, 1)
}

func TestValidateBatch_ErrorsKeyedByRecordIndex(t *testing.T) {
	good := validPayload()
	bad := validPayload()
	bad.StartTime = "bogus"

	errs := ValidateBatch(Batch{good, bad})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "entries[1].start_time")
}

func TestValidateBatch_OpenEntryAllowed(t *testing.T) {
	p := validPayload()
	p.EndTime = nil
	assert.Empty(t, ValidateBatch(Batch{p}))
}
