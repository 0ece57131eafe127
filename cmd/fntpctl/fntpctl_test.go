package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	analysisstore "fntp-backend/lib/analysis/store"
	responsestore "fntp-backend/lib/assessment/response-store"
	assessmentstore "fntp-backend/lib/assessment/store"
	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestPurger(t *testing.T) purger {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.Assessment{}, &dbmodels.AssessmentResponse{}, &dbmodels.AssessmentAnalysis{}))
	return purger{
		assessmentStore: assessmentstore.NewInstance(db),
		responseStore:   responsestore.NewInstance(db),
		analysisStore:   analysisstore.NewInstance(db),
	}
}

func TestPurge(t *testing.T) {
	p := newTestPurger(t)
	now := time.Now().UTC()
	old := now.Add(-48 * time.Hour)

	oldID, err := p.assessmentStore.Create(dbmodels.Assessment{
		ClientID:    "c-1",
		Status:      models.AssessmentStatusCompleted,
		CompletedAt: &old,
	})
	require.Nil(t, err)
	freshID, err := p.assessmentStore.Create(dbmodels.Assessment{
		ClientID:    "c-1",
		Status:      models.AssessmentStatusCompleted,
		CompletedAt: &now,
	})
	require.Nil(t, err)
	require.Nil(t, p.responseStore.Upsert(dbmodels.AssessmentResponse{AssessmentID: oldID, QuestionID: "SCR001", ResponseValue: 3}))
	require.Nil(t, p.analysisStore.Save(dbmodels.AssessmentAnalysis{AssessmentID: oldID, Summary: "s"}))

	out := &bytes.Buffer{}
	count, err := p.purge(out, now.Add(-24*time.Hour), true)
	require.Nil(t, err)
	require.Equal(t, 0, count)
	require.Contains(t, out.String(), oldID)
	rec, err := p.assessmentStore.GetByID(oldID)
	require.Nil(t, err)
	require.NotNil(t, rec)

	count, err = p.purge(&bytes.Buffer{}, now.Add(-24*time.Hour), false)
	require.Nil(t, err)
	require.Equal(t, 1, count)

	rec, err = p.assessmentStore.GetByID(oldID)
	require.Nil(t, err)
	require.Nil(t, rec)
	responses, err := p.responseStore.ListByAssessment(oldID)
	require.Nil(t, err)
	require.Empty(t, responses)
	analysis, err := p.analysisStore.GetByAssessment(oldID)
	require.Nil(t, err)
	require.Nil(t, analysis)

	rec, err = p.assessmentStore.GetByID(freshID)
	require.Nil(t, err)
	require.NotNil(t, rec)
}

func TestPrintTemplate(t *testing.T) {
	out := &bytes.Buffer{}
	printTemplate(out, questionbank.Essential(), true)
	require.Contains(t, out.String(), "essential")
	require.Contains(t, out.String(), "30 questions")
	require.Contains(t, out.String(), "essential-anxiety-impact")
}
