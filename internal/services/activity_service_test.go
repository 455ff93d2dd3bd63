package services

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"github.com/majoduan/poa-backend/internal/apperrors"
	"github.com/majoduan/poa-backend/internal/models"
	"github.com/majoduan/poa-backend/internal/repositories"
	"github.com/majoduan/poa-backend/internal/validators"
)

func newActivityServiceFixture(t *testing.T) (*ActivityService, *sql.DB, uuid.UUID) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE activities (
		id TEXT PRIMARY KEY,
		poa_id TEXT NOT NULL,
		description TEXT NOT NULL,
		total REAL NOT NULL DEFAULT 0,
		balance REAL NOT NULL DEFAULT 0
	)`)
	assert.NoError(t, err)

	store := validators.NewMemoryStore()
	poaID := uuid.New()
	store.POAs[poaID] = &models.POA{ID: poaID, Code: "POA-001"}

	service := NewActivityService(repositories.NewActivityRepository(db), store)
	return service, db, poaID
}

func countActivities(t *testing.T, db *sql.DB) int {
	t.Helper()

	var count int
	err := db.QueryRow(`SELECT COUNT(1) FROM activities`).Scan(&count)
	assert.NoError(t, err)
	return count
}

func TestCreateActivities(t *testing.T) {
	service, db, poaID := newActivityServiceFixture(t)

	activities, err := service.CreateActivities(poaID.String(), []string{"Field survey", "Data analysis"})

	assert.NoError(t, err)
	assert.Len(t, activities, 2)
	assert.Equal(t, 2, countActivities(t, db))
}

func TestCreateActivitiesRejectsWholeBatchOnEmptyDescription(t *testing.T) {
	service, db, poaID := newActivityServiceFixture(t)

	_, err := service.CreateActivities(poaID.String(), []string{"Field survey", ""})

	assert.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.FormatInvalid, kind)

	// A rejected batch must not persist the entries that preceded the bad one.
	assert.Equal(t, 0, countActivities(t, db))
}

func TestCreateActivitiesUnknownPOA(t *testing.T) {
	service, db, _ := newActivityServiceFixture(t)

	_, err := service.CreateActivities(uuid.New().String(), []string{"Field survey"})

	assert.Error(t, err)
	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.NotFound, kind)
	assert.Equal(t, 0, countActivities(t, db))
}
