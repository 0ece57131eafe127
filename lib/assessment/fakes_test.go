package assessment

import (
	"sort"
	"time"

	connectionhub "fntp-backend/lib/ws/hub/connection-hub"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"
	wsmodels "fntp-backend/models/ws"

	"github.com/google/uuid"
)

type fakeAssessmentStore struct {
	recs    map[string]*dbmodels.Assessment
	updates int
}

func newFakeAssessmentStore() *fakeAssessmentStore {
	return &fakeAssessmentStore{recs: map[string]*dbmodels.Assessment{}}
}

func (f *fakeAssessmentStore) Create(rec dbmodels.Assessment) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAssessmentStore) GetByID(id string) (*dbmodels.Assessment, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	copyRec := *rec
	copyRec.RedFlags = append(dbmodels.RedFlags{}, rec.RedFlags...)
	return &copyRec, nil
}

func (f *fakeAssessmentStore) GetActiveByClient(clientID string) (*dbmodels.Assessment, error) {
	for id, rec := range f.recs {
		if rec.ClientID == clientID && rec.Status != models.AssessmentStatusCompleted {
			return f.GetByID(id)
		}
	}
	return nil, nil
}

func (f *fakeAssessmentStore) ListByClient(clientID string) ([]dbmodels.Assessment, error) {
	list := []dbmodels.Assessment{}
	for _, rec := range f.recs {
		if rec.ClientID == clientID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeAssessmentStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	f.updates++
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.AssessmentStatus)
		case "current_module":
			rec.CurrentModule = value.(models.FunctionalModule)
		case "questions_asked":
			rec.QuestionsAsked = value.(int)
		case "resume_count":
			rec.ResumeCount = value.(int)
		case "last_active_at":
			rec.LastActiveAt = value.(time.Time)
		case "completed_at":
			completedAt := value.(time.Time)
			rec.CompletedAt = &completedAt
		case "red_flags":
			rec.RedFlags = value.(dbmodels.RedFlags)
		case "is_analyzed":
			rec.IsAnalyzed = value.(bool)
		}
	}
	return nil
}

func (f *fakeAssessmentStore) GetForAnalysis() ([]dbmodels.Assessment, error) {
	return nil, nil
}

func (f *fakeAssessmentStore) SetAnalyzed(id string, isAnalyzed bool) error {
	return f.Update(id, map[string]interface{}{"is_analyzed": isAnalyzed})
}

func (f *fakeAssessmentStore) ListCompletedBefore(before time.Time) ([]dbmodels.Assessment, error) {
	return nil, nil
}

func (f *fakeAssessmentStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

type fakeResponseStore struct {
	rows map[string]map[string]dbmodels.AssessmentResponse
}

func newFakeResponseStore() *fakeResponseStore {
	return &fakeResponseStore{rows: map[string]map[string]dbmodels.AssessmentResponse{}}
}

func (f *fakeResponseStore) Upsert(rec dbmodels.AssessmentResponse) error {
	if f.rows[rec.AssessmentID] == nil {
		f.rows[rec.AssessmentID] = map[string]dbmodels.AssessmentResponse{}
	}
	f.rows[rec.AssessmentID][rec.QuestionID] = rec
	return nil
}

func (f *fakeResponseStore) ListByAssessment(assessmentID string) ([]dbmodels.AssessmentResponse, error) {
	list := []dbmodels.AssessmentResponse{}
	for _, rec := range f.rows[assessmentID] {
		list = append(list, rec)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].AnsweredAt.Before(list[j].AnsweredAt)
	})
	return list, nil
}

func (f *fakeResponseStore) Count(assessmentID string) (int64, error) {
	return int64(len(f.rows[assessmentID])), nil
}

func (f *fakeResponseStore) DeleteByAssessment(assessmentID string) error {
	delete(f.rows, assessmentID)
	return nil
}

type fakeClientStore struct {
	recs map[string]dbmodels.Client
}

func (f *fakeClientStore) Create(rec dbmodels.Client) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeClientStore) GetByID(id string) (*dbmodels.Client, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeClientStore) GetByEmail(practitionerID, email string) (*dbmodels.Client, error) {
	return nil, nil
}

func (f *fakeClientStore) List(practitionerID string, page, limit int) ([]dbmodels.Client, int64, error) {
	return nil, 0, nil
}

type fakeNotifier struct {
	redFlags  []dbmodels.RedFlag
	completed int
}

func (f *fakeNotifier) RedFlags(client dbmodels.Client, rec dbmodels.Assessment, flags []dbmodels.RedFlag) {
	f.redFlags = append(f.redFlags, flags...)
}

func (f *fakeNotifier) Completed(client dbmodels.Client, rec dbmodels.Assessment, severityReport string) {
	f.completed++
}

type fakeHub struct {
	messages []wsmodels.ServerMessage
}

func (f *fakeHub) Subscribe(assessmentID string, conn connectionhub.Conn) string {
	return ""
}

func (f *fakeHub) Unsubscribe(assessmentID, sessionID string) {}

func (f *fakeHub) SendMessage(msg wsmodels.ServerMessage) {
	f.messages = append(f.messages, msg)
}

func (f *fakeHub) SubscriberCount(assessmentID string) int {
	return 0
}
