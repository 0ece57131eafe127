package analysisstore

import (
	"fmt"
	"testing"

	dbmodels "fntp-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.AssessmentAnalysis{}))
	return db
}

func TestSave(t *testing.T) {
	store := NewInstance(newTestDB(t))

	rec, err := store.GetByAssessment("a-1")
	require.Nil(t, err)
	require.Nil(t, rec)

	require.Nil(t, store.Save(dbmodels.AssessmentAnalysis{
		AssessmentID: "a-1",
		Provider:     "openai",
		Model:        "gpt-3.5-turbo-1106",
		Summary:      "first",
	}))
	require.Nil(t, store.Save(dbmodels.AssessmentAnalysis{
		AssessmentID: "a-1",
		Provider:     "yandexgpt",
		Model:        "yandexgpt-lite",
		Summary:      "second",
	}))

	rec, err = store.GetByAssessment("a-1")
	require.Nil(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "second", rec.Summary)
	require.Equal(t, "yandexgpt", rec.Provider)

	require.Nil(t, store.DeleteByAssessment("a-1"))
	rec, err = store.GetByAssessment("a-1")
	require.Nil(t, err)
	require.Nil(t, rec)
}
