package assessmentstore

import (
	"fmt"
	"testing"
	"time"

	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.Assessment{}))
	return db
}

func TestGetActiveByClient(t *testing.T) {
	store := NewInstance(newTestDB(t))
	now := time.Now().UTC()

	rec, err := store.GetActiveByClient("c-1")
	require.Nil(t, err)
	require.Nil(t, rec)

	_, err = store.Create(dbmodels.Assessment{ClientID: "c-1", Status: models.AssessmentStatusCompleted, LastActiveAt: now})
	require.Nil(t, err)
	pausedID, err := store.Create(dbmodels.Assessment{ClientID: "c-1", Status: models.AssessmentStatusPaused, LastActiveAt: now.Add(-time.Hour)})
	require.Nil(t, err)

	rec, err = store.GetActiveByClient("c-1")
	require.Nil(t, err)
	require.NotNil(t, rec)
	require.Equal(t, pausedID, rec.ID)

	list, err := store.ListByClient("c-1")
	require.Nil(t, err)
	require.Len(t, list, 2)
}

func TestUpdateAndRedFlags(t *testing.T) {
	store := NewInstance(newTestDB(t))
	id, err := store.Create(dbmodels.Assessment{ClientID: "c-1", Status: models.AssessmentStatusInProgress, RedFlags: dbmodels.RedFlags{}})
	require.Nil(t, err)

	require.Nil(t, store.Update(id, nil))
	require.Nil(t, store.Update(id, map[string]interface{}{
		"current_module": models.ModuleAssimilation,
		"red_flags":      dbmodels.RedFlags{{QuestionID: "CM001", Message: "Self-harm thoughts reported", Value: 1}},
	}))

	rec, err := store.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.ModuleAssimilation, rec.CurrentModule)
	require.True(t, rec.RedFlags.Has("CM001"))
}

func TestAnalysisQueue(t *testing.T) {
	store := NewInstance(newTestDB(t))
	now := time.Now().UTC()
	id, err := store.Create(dbmodels.Assessment{ClientID: "c-1", Status: models.AssessmentStatusCompleted, CompletedAt: &now})
	require.Nil(t, err)
	_, err = store.Create(dbmodels.Assessment{ClientID: "c-1", Status: models.AssessmentStatusInProgress})
	require.Nil(t, err)

	list, err := store.GetForAnalysis()
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, id, list[0].ID)

	require.Nil(t, store.SetAnalyzed(id, true))
	list, err = store.GetForAnalysis()
	require.Nil(t, err)
	require.Empty(t, list)

	list, err = store.ListCompletedBefore(now.Add(time.Minute))
	require.Nil(t, err)
	require.Len(t, list, 1)

	require.Nil(t, store.Delete(id))
	rec, err := store.GetByID(id)
	require.Nil(t, err)
	require.Nil(t, rec)
}
