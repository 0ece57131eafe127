package clientstore

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
	require.Nil(t, db.AutoMigrate(&dbmodels.Client{}))
	return db
}

func TestClientStore(t *testing.T) {
	store := NewInstance(newTestDB(t))
	for _, name := range []string{"Carter", "Adams", "Brown"} {
		_, err := store.Create(dbmodels.Client{PractitionerID: "p-1", FirstName: "Ann", LastName: name, Email: name + "@example.com"})
		require.Nil(t, err)
	}
	_, err := store.Create(dbmodels.Client{PractitionerID: "p-2", LastName: "Other"})
	require.Nil(t, err)

	rec, err := store.GetByEmail("p-1", "ADAMS@example.com")
	require.Nil(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Ann Adams", rec.FullName())

	rec, err = store.GetByEmail("p-2", "adams@example.com")
	require.Nil(t, err)
	require.Nil(t, rec)

	list, rowCount, err := store.List("p-1", 2, 2)
	require.Nil(t, err)
	require.Equal(t, int64(3), rowCount)
	require.Len(t, list, 1)
	require.Equal(t, "Carter", list[0].LastName)

	rec, err = store.GetByID("missing")
	require.Nil(t, err)
	require.Nil(t, rec)
}
