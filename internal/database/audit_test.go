package database

import (
	"testing"
	"time"

	"github.com/diegoclair/athlete-weekly-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAuditRepo(db.conn)

	entry := &entity.AuditEntry{
		Action: "announcement.opening",
		Detail: "week 7",
		Actor:  "scheduler",
	}

	err := repo.Create(entry)
	require.NoError(t, err, "Failed to create audit entry")

	assert.NotZero(t, entry.ID, "Expected ID to be set after creation")
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestAuditRepo_ListRecent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newAuditRepo(db.conn)

	base := time.Date(2024, 2, 12, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"first", "second", "third"} {
		err := repo.Create(&entity.AuditEntry{
			Action:    action,
			Actor:     "test",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "third", entries[0].Action)
	assert.Equal(t, "second", entries[1].Action)
	assert.True(t, entries[0].CreatedAt.Equal(base.Add(2*time.Minute)))
}

func TestAuditRepo_ListRecent_Empty(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	entries, err := newAuditRepo(db.conn).ListRecent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
