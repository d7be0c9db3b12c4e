package ingest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_DefaultsApplied(t *testing.T) {
	now := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	p := validPayload()
	p.Description = nil
	p.Billable = nil

	converted, err := Convert(Batch{p}, now)
	require.NoError(t, err)
	require.Len(t, converted, 1)

	entry := converted[0].Entry
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "", entry.Description)
	assert.True(t, entry.Billable, "billable defaults to true")
	assert.Equal(t, now, entry.CreatedAt)
	require.NotNil(t, entry.EndTime)
	assert.Equal(t, 5400, entry.DurationSeconds())
}

func TestConvert_ExplicitFields(t *testing.T) {
	now := time.Now().UTC()
	billable := false
	projectID := uuid.New().String()
	tagID := uuid.New().String()

	p := validPayload()
	p.Description = strp("imported from payroll")
	p.Billable = &billable
	p.ProjectID = &projectID
	p.TagIDs = []string{tagID}

	converted, err := Convert(Batch{p}, now)
	require.NoError(t, err)
	require.Len(t, converted, 1)

	entry := converted[0].Entry
	assert.Equal(t, "imported from payroll", entry.Description)
	assert.False(t, entry.Billable)
	require.NotNil(t, entry.ProjectID)
	assert.Equal(t, projectID, *entry.ProjectID)
	assert.Equal(t, []string{tagID}, converted[0].TagIDs)
}

func TestConvert_OpenEntry(t *testing.T) {
	p := validPayload()
	p.EndTime = nil

	converted, err := Convert(Batch{p}, time.Now().UTC())
	require.NoError(t, err)
	assert.Nil(t, converted[0].Entry.EndTime)
	assert.True(t, converted[0].Entry.Running())
}

func TestParseBatch_RejectsMalformedJSON(t *testing.T) {
	_, err := ParseBatch([]byte(`{"not": "an array"}`))
	assert.Error(t, err)

	batch, err := ParseBatch([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, batch)
}
