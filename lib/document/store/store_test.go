package documentstore

import (
	"fmt"
	"testing"

	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.Document{}))
	return db
}

func TestDocumentStore(t *testing.T) {
	store := NewInstance(newTestDB(t))
	id, err := store.Create(dbmodels.Document{
		ClientID:    "c-1",
		Name:        "labs.txt",
		ContentType: "text/plain",
		Status:      models.DocumentStatusUploaded,
	})
	require.Nil(t, err)
	require.NotEmpty(t, id)

	require.Nil(t, store.Update(id, map[string]interface{}{
		"status":   models.DocumentStatusAnalyzed,
		"analysis": "Vitamin D is low",
	}))
	rec, err := store.GetByID(id)
	require.Nil(t, err)
	require.Equal(t, models.DocumentStatusAnalyzed, rec.Status)
	require.Equal(t, "Vitamin D is low", rec.Analysis)

	list, err := store.ListByClient("c-1")
	require.Nil(t, err)
	require.Len(t, list, 1)
	list, err = store.ListByClient("c-2")
	require.Nil(t, err)
	require.Empty(t, list)
}
