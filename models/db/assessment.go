package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"fntp-backend/models"

	"github.com/pkg/errors"
)

type Assessment struct {
	BaseModel
	ClientID        string                  `gorm:"type:varchar(36);index"`
	TemplateName    string                  `gorm:"type:varchar(50)"`
	TemplateVersion string                  `gorm:"type:varchar(20)"`
	Status          models.AssessmentStatus `gorm:"type:varchar(20);index"`
	CurrentModule   models.FunctionalModule `gorm:"type:varchar(30)"`
	QuestionsAsked  int
	QuestionsSaved  int // questions skipped by adaptive logic, not populated yet
	ResumeCount     int
	StartedAt       time.Time
	LastActiveAt    time.Time
	CompletedAt     *time.Time
	RedFlags        RedFlags `gorm:"type:jsonb"`
	IsAnalyzed      bool     `gorm:"index"`
}

func (a Assessment) IsCompleted() bool {
	return a.Status == models.AssessmentStatusCompleted
}

type AssessmentResponse struct {
	BaseModel
	AssessmentID   string                  `gorm:"type:varchar(36);uniqueIndex:idx_assessment_question"`
	QuestionID     string                  `gorm:"type:varchar(100);uniqueIndex:idx_assessment_question"`
	QuestionModule models.FunctionalModule `gorm:"type:varchar(30)"` // copy of the question module at answer time
	QuestionText   string
	ResponseType   models.QuestionType `gorm:"type:varchar(20)"`
	ResponseValue  int
	ResponseText   string
	AnsweredAt     time.Time
}

type RedFlag struct {
	QuestionID string    `json:"question_id"`
	Message    string    `json:"message"`
	Value      int       `json:"value"`
	RaisedAt   time.Time `json:"raised_at"`
}

type RedFlags []RedFlag

func (j RedFlags) Value() (driver.Value, error) {
	if j == nil {
		j = RedFlags{}
	}
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *RedFlags) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*j = RedFlags{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported red flags type %T", value)
	}
	return json.Unmarshal(data, j)
}

func (j RedFlags) Has(questionID string) bool {
	for _, flag := range j {
		if flag.QuestionID == questionID {
			return true
		}
	}
	return false
}

type AssessmentAnalysis struct {
	BaseModel
	AssessmentID   string `gorm:"type:varchar(36);uniqueIndex"`
	Provider       string `gorm:"type:varchar(30)"`
	Model          string `gorm:"type:varchar(100)"`
	SeverityReport string
	Summary        string
}
