package responsestore

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
	require.Nil(t, db.AutoMigrate(&dbmodels.AssessmentResponse{}))
	return db
}

func TestUpsert(t *testing.T) {
	store := NewInstance(newTestDB(t))
	answeredAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	rec := dbmodels.AssessmentResponse{
		AssessmentID:   "a-1",
		QuestionID:     "SCR001",
		QuestionModule: models.ModuleScreening,
		ResponseType:   models.QuestionTypeLikert,
		ResponseValue:  3,
		AnsweredAt:     answeredAt,
	}
	require.Nil(t, store.Upsert(rec))

	rec.ResponseValue = 5
	rec.AnsweredAt = answeredAt.Add(time.Minute)
	require.Nil(t, store.Upsert(rec))

	list, err := store.ListByAssessment("a-1")
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 5, list[0].ResponseValue)

	other := rec
	other.QuestionID = "SCR_SO01"
	other.ID = ""
	require.Nil(t, store.Upsert(other))
	count, err := store.Count("a-1")
	require.Nil(t, err)
	require.Equal(t, int64(2), count)

	require.Nil(t, store.DeleteByAssessment("a-1"))
	count, err = store.Count("a-1")
	require.Nil(t, err)
	require.Equal(t, int64(0), count)
}
