package responsestore

import (
	dbmodels "fntp-backend/models/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Upsert(rec dbmodels.AssessmentResponse) error
	ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error)
	Count(assessmentID string) (int64, error)
	DeleteByAssessment(assessmentID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert keeps one row per (assessment_id, question_id), last write wins.
func (i impl) Upsert(rec dbmodels.AssessmentResponse) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"question_module",
				"question_text",
				"response_type",
				"response_value",
				"response_text",
				"answered_at",
				"updated_at",
			}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) ListByAssessment(assessmentID string) (list []dbmodels.AssessmentResponse, err error) {
	list = []dbmodels.AssessmentResponse{}
	err = i.db.
		Where("assessment_id = ?", assessmentID).
		Order("answered_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count(assessmentID string) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.AssessmentResponse{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) DeleteByAssessment(assessmentID string) error {
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		Delete(&dbmodels.AssessmentResponse{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
