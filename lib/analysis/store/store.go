package analysisstore

import (
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Save(rec dbmodels.AssessmentAnalysis) error
	GetByAssessment(assessmentID string) (rec *dbmodels.AssessmentAnalysis, err error)
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

// Save keeps a single analysis per assessment, a repeated analysis replaces the text.
func (i impl) Save(rec dbmodels.AssessmentAnalysis) error {
	err := i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assessment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"provider", "model", "severity_report", "summary", "updated_at"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetByAssessment(assessmentID string) (*dbmodels.AssessmentAnalysis, error) {
	rec := dbmodels.AssessmentAnalysis{}
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) DeleteByAssessment(assessmentID string) error {
	err := i.db.
		Where("assessment_id = ?", assessmentID).
		Delete(&dbmodels.AssessmentAnalysis{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
