package assessmentstore

import (
	"time"

	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Assessment) (id string, err error)
	GetByID(id string) (rec *dbmodels.Assessment, err error)
	GetActiveByClient(clientID string) (rec *dbmodels.Assessment, err error)
	ListByClient(clientID string) (list []dbmodels.Assessment, err error)
	Update(id string, updMap map[string]interface{}) error
	GetForAnalysis() (list []dbmodels.Assessment, err error)
	SetAnalyzed(id string, isAnalyzed bool) error
	ListCompletedBefore(before time.Time) (list []dbmodels.Assessment, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Assessment) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("id = ?", id).
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

// GetActiveByClient returns the most recently active IN_PROGRESS or PAUSED assessment.
func (i impl) GetActiveByClient(clientID string) (*dbmodels.Assessment, error) {
	rec := dbmodels.Assessment{}
	err := i.db.
		Where("client_id = ?", clientID).
		Where("status in (?)", []models.AssessmentStatus{models.AssessmentStatusInProgress, models.AssessmentStatusPaused}).
		Order("last_active_at desc").
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

func (i impl) ListByClient(clientID string) (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	err = i.db.
		Where("client_id = ?", clientID).
		Order("started_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Assessment{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetForAnalysis() (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	err = i.db.
		Where("status = ?", models.AssessmentStatusCompleted).
		Where("is_analyzed = ?", false).
		Order("completed_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SetAnalyzed(id string, isAnalyzed bool) error {
	return i.Update(id, map[string]interface{}{"is_analyzed": isAnalyzed})
}

func (i impl) ListCompletedBefore(before time.Time) (list []dbmodels.Assessment, err error) {
	list = []dbmodels.Assessment{}
	err = i.db.
		Where("status = ?", models.AssessmentStatusCompleted).
		Where("completed_at < ?", before).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	err := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Assessment{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
