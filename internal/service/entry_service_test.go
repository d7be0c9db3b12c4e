package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielgrim/tempora/internal/domain"
	"github.com/danielgrim/tempora/internal/repository"
	"github.com/danielgrim/tempora/internal/testutil"
)

func newEntryFixture(t *testing.T) (EntryService, repository.EntryRepo, *repository.SQLiteTagRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEntryRepo(database)
	tags := repository.NewSQLiteTagRepo(database)
	clock := &stubClock{now: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)}
	return NewEntryService(repo, clock), repo, tags
}

func TestCreateManual_Persisted(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	entry, err := svc.CreateManual(ctx, testutil.UserID, testutil.WorkspaceID, ManualEntry{
		Description: "retro prep",
		StartTime:   start,
		EndTime:     end,
	})
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "retro prep", fetched.Description)
	assert.Equal(t, 5400, fetched.DurationSeconds())
	assert.True(t, fetched.Billable)
}

func TestCreateManual_AttachesTags(t *testing.T) {
	svc, _, tags := newEntryFixture(t)
	ctx := context.Background()

	tag := testutil.NewTestTag("deep-work")
	require.NoError(t, tags.Create(ctx, tag))

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	entry, err := svc.CreateManual(ctx, testutil.UserID, testutil.WorkspaceID, ManualEntry{
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		TagIDs:    []string{tag.ID},
	})
	require.NoError(t, err)

	linked, err := tags.ListByEntry(ctx, entry.ID)
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "deep-work", linked[0].Name)
}

func TestCreateManual_RejectsBadOrdering(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		end  time.Time
	}{
		{"end before start", start.Add(-time.Minute)},
		{"end equals start", start},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateManual(ctx, testutil.UserID, testutil.WorkspaceID, ManualEntry{
				StartTime: start,
				EndTime:   tc.end,
			})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	// Nothing was written.
	list, err := repo.ListByUser(ctx, testutil.UserID, testutil.WorkspaceID, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateManual_RequiresEnd(t *testing.T) {
	svc, _, _ := newEntryFixture(t)

	_, err := svc.CreateManual(context.Background(), testutil.UserID, testutil.WorkspaceID, ManualEntry{
		StartTime: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_ChangesFields(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	seed := testutil.NewTestEntry(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, seed))

	desc := "renamed"
	billable := false
	updated, err := svc.Update(ctx, testutil.UserID, seed.ID, EntryChanges{
		Description: &desc,
		Billable:    &billable,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Description)
	assert.False(t, updated.Billable)

	fetched, err := repo.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", fetched.Description)
}

func TestUpdate_ClosesOpenEntry(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seed := testutil.NewTestEntry(start, testutil.Running())
	require.NoError(t, repo.Create(ctx, seed))

	end := start.Add(2 * time.Hour)
	updated, err := svc.Update(ctx, testutil.UserID, seed.ID, EntryChanges{EndTime: &end})
	require.NoError(t, err)
	assert.False(t, updated.Running())
	assert.Equal(t, 7200, updated.DurationSeconds())
}

func TestUpdate_RejectsReorderedTimes(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	seed := testutil.NewTestEntry(start)
	require.NoError(t, repo.Create(ctx, seed))

	badStart := seed.EndTime.Add(time.Hour)
	_, err := svc.Update(ctx, testutil.UserID, seed.ID, EntryChanges{StartTime: &badStart})
	require.ErrorIs(t, err, domain.ErrValidation)

	fetched, err := repo.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.True(t, start.Equal(fetched.StartTime), "rejected update must not persist")
}

func TestUpdate_OtherUsersEntryLooksAbsent(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	seed := testutil.NewTestEntry(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, seed))

	desc := "hijack"
	otherUser := "b7f9d8a0-2222-4aaa-9bbb-000000000099"
	_, err := svc.Update(ctx, otherUser, seed.ID, EntryChanges{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_OwnerScoped(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	seed := testutil.NewTestEntry(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, seed))

	otherUser := "b7f9d8a0-2222-4aaa-9bbb-000000000099"
	err := svc.Delete(ctx, otherUser, seed.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, testutil.UserID, seed.ID))
	_, err = repo.GetByID(ctx, seed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_CapsAndOrders(t *testing.T) {
	svc, repo, _ := newEntryFixture(t)
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		e := testutil.NewTestEntry(base.Add(time.Duration(i) * 2 * time.Hour))
		require.NoError(t, repo.Create(ctx, e))
	}

	got, err := svc.List(ctx, testutil.UserID, testutil.WorkspaceID, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].StartTime.After(got[1].StartTime), "newest first")

	all, err := svc.List(ctx, testutil.UserID, testutil.WorkspaceID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
