package analysis

import (
	"context"
	"fmt"
	"testing"
	"time"

	analysisstore "fntp-backend/lib/analysis/store"
	responsestore "fntp-backend/lib/assessment/response-store"
	assessmentstore "fntp-backend/lib/assessment/store"
	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeAI struct {
	prompt string
	err    error
}

func (f *fakeAI) Complete(_ context.Context, _, user string) (string, error) {
	f.prompt = user
	if f.err != nil {
		return "", f.err
	}
	return "Focus on minerals.", nil
}

func (f *fakeAI) Name() string  { return "fake" }
func (f *fakeAI) Model() string { return "fake-1" }

type fakeThrottle struct {
	seen map[string]bool
}

func (f *fakeThrottle) Allow(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

func newTestImpl(t *testing.T, provider *fakeAI) (impl, assessmentstore.Provider, responsestore.Provider) {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.Nil(t, err)
	require.Nil(t, db.AutoMigrate(&dbmodels.Assessment{}, &dbmodels.AssessmentResponse{}, &dbmodels.AssessmentAnalysis{}))
	i := impl{
		assessmentStore: assessmentstore.NewInstance(db),
		responseStore:   responsestore.NewInstance(db),
		analysisStore:   analysisstore.NewInstance(db),
		ai:              provider,
		throttle:        &fakeThrottle{seen: map[string]bool{}},
		reanalyzeWindow: time.Minute,
	}
	return i, i.assessmentStore, i.responseStore
}

func createAssessment(t *testing.T, store assessmentstore.Provider, status models.AssessmentStatus) string {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	id, err := store.Create(dbmodels.Assessment{
		ClientID:        "c-1",
		TemplateName:    questionbank.TemplateFull,
		TemplateVersion: "2024.2",
		Status:          status,
		CurrentModule:   models.ModuleStructural,
		StartedAt:       now,
		LastActiveAt:    now,
		CompletedAt:     &now,
		RedFlags: dbmodels.RedFlags{
			{QuestionID: "SCR001", Message: "Severe fatigue reported", Value: 5, RaisedAt: now},
		},
	})
	require.Nil(t, err)
	return id
}

func TestAnalyze(t *testing.T) {
	provider := &fakeAI{}
	i, assessments, responses := newTestImpl(t, provider)
	id := createAssessment(t, assessments, models.AssessmentStatusCompleted)

	require.Nil(t, responses.Upsert(dbmodels.AssessmentResponse{
		AssessmentID:   id,
		QuestionID:     "ST002",
		QuestionModule: models.ModuleStructural,
		ResponseType:   models.QuestionTypeFrequency,
		ResponseValue:  5,
		ResponseText:   "Daily",
		AnsweredAt:     time.Now(),
	}))

	require.Nil(t, i.Analyze(context.Background(), id))
	require.Contains(t, provider.prompt, "How often do you get muscle cramps?")
	require.Contains(t, provider.prompt, "Magnesium RBC")
	require.Contains(t, provider.prompt, "Severe fatigue reported")

	view, err := i.Get(id)
	require.Nil(t, err)
	require.Equal(t, "Focus on minerals.", view.Summary)
	require.Equal(t, "fake", view.Provider)

	rec, err := assessments.GetByID(id)
	require.Nil(t, err)
	require.True(t, rec.IsAnalyzed)
}

func TestAnalyzeErrors(t *testing.T) {
	provider := &fakeAI{}
	i, assessments, _ := newTestImpl(t, provider)

	err := i.Analyze(context.Background(), "missing")
	require.True(t, errors.Is(err, models.ErrNotFound))

	id := createAssessment(t, assessments, models.AssessmentStatusInProgress)
	require.NotNil(t, i.Analyze(context.Background(), id))

	id = createAssessment(t, assessments, models.AssessmentStatusCompleted)
	provider.err = errors.New("rate limited")
	require.NotNil(t, i.Analyze(context.Background(), id))
	rec, err := assessments.GetByID(id)
	require.Nil(t, err)
	require.False(t, rec.IsAnalyzed)

	_, err = i.Get(id)
	require.True(t, errors.Is(err, models.ErrNotFound))
}

func TestRequestReanalysis(t *testing.T) {
	i, assessments, _ := newTestImpl(t, &fakeAI{})
	ctx := context.Background()

	inProgress := createAssessment(t, assessments, models.AssessmentStatusInProgress)
	hMsg, err := i.RequestReanalysis(ctx, inProgress)
	require.Nil(t, err)
	require.NotEmpty(t, hMsg)

	id := createAssessment(t, assessments, models.AssessmentStatusCompleted)
	require.Nil(t, assessments.SetAnalyzed(id, true))
	hMsg, err = i.RequestReanalysis(ctx, id)
	require.Nil(t, err)
	require.Empty(t, hMsg)
	rec, err := assessments.GetByID(id)
	require.Nil(t, err)
	require.False(t, rec.IsAnalyzed)

	hMsg, err = i.RequestReanalysis(ctx, id)
	require.Nil(t, err)
	require.Equal(t, "analysis was requested recently, try again later", hMsg)
}
