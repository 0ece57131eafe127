package assessmentapimodels

import (
	"time"

	"fntp-backend/lib/assessment/progress"
	"fntp-backend/lib/questionbank"
	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"
)

type SubmitRequest struct {
	QuestionID string `json:"question_id" validate:"required,max=100"`
	Value      int    `json:"value"`
	Text       string `json:"text" validate:"max=4000"`
}

type StartResult struct {
	AssessmentID    string                  `json:"assessment_id"`
	Status          models.AssessmentStatus `json:"status"`
	CurrentQuestion *questionbank.Question  `json:"current_question"`
	Resuming        bool                    `json:"resuming"`
	Progress        progress.Snapshot       `json:"progress"`
}

type SubmitResult struct {
	Accepted      bool                    `json:"accepted"`
	Status        models.AssessmentStatus `json:"status"`
	CurrentModule models.FunctionalModule `json:"current_module"`
	RedFlags      []dbmodels.RedFlag      `json:"red_flags,omitempty"` // новые флаги этого ответа
	Progress      progress.Snapshot       `json:"progress"`
}

type NextQuestionView struct {
	Question  *questionbank.Question  `json:"question"`
	Module    models.FunctionalModule `json:"module"`
	Completed bool                    `json:"completed"`
	Progress  progress.Snapshot       `json:"progress"`
}

type AssessmentView struct {
	ID              string                  `json:"id"`
	ClientID        string                  `json:"client_id"`
	Template        string                  `json:"template"`
	TemplateVersion string                  `json:"template_version"`
	Status          models.AssessmentStatus `json:"status"`
	CurrentModule   models.FunctionalModule `json:"current_module"`
	QuestionsAsked  int                     `json:"questions_asked"`
	QuestionsSaved  int                     `json:"questions_saved"`
	ResumeCount     int                     `json:"resume_count"`
	StartedAt       time.Time               `json:"started_at"`
	LastActiveAt    time.Time               `json:"last_active_at"`
	CompletedAt     *time.Time              `json:"completed_at"`
	RedFlags        []dbmodels.RedFlag      `json:"red_flags"`
	IsAnalyzed      bool                    `json:"is_analyzed"`
}

type ResponseView struct {
	QuestionID   string                  `json:"question_id"`
	Module       models.FunctionalModule `json:"module"`
	QuestionText string                  `json:"question_text"`
	Type         models.QuestionType     `json:"type"`
	Value        int                     `json:"value"`
	Text         string                  `json:"text"`
	AnsweredAt   time.Time               `json:"answered_at"`
}

func AssessmentConvert(rec dbmodels.Assessment) AssessmentView {
	flags := []dbmodels.RedFlag(rec.RedFlags)
	if flags == nil {
		flags = []dbmodels.RedFlag{}
	}
	return AssessmentView{
		ID:              rec.ID,
		ClientID:        rec.ClientID,
		Template:        rec.TemplateName,
		TemplateVersion: rec.TemplateVersion,
		Status:          rec.Status,
		CurrentModule:   rec.CurrentModule,
		QuestionsAsked:  rec.QuestionsAsked,
		QuestionsSaved:  rec.QuestionsSaved,
		ResumeCount:     rec.ResumeCount,
		StartedAt:       rec.StartedAt,
		LastActiveAt:    rec.LastActiveAt,
		CompletedAt:     rec.CompletedAt,
		RedFlags:        flags,
		IsAnalyzed:      rec.IsAnalyzed,
	}
}

func ResponseConvert(rec dbmodels.AssessmentResponse) ResponseView {
	return ResponseView{
		QuestionID:   rec.QuestionID,
		Module:       rec.QuestionModule,
		QuestionText: rec.QuestionText,
		Type:         rec.ResponseType,
		Value:        rec.ResponseValue,
		Text:         rec.ResponseText,
		AnsweredAt:   rec.AnsweredAt,
	}
}
