package clientstore

import (
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Client) (id string, err error)
	GetByID(id string) (rec *dbmodels.Client, err error)
	GetByEmail(practitionerID, email string) (rec *dbmodels.Client, err error)
	List(practitionerID string, page, limit int) (list []dbmodels.Client, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Client) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{}
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

func (i impl) GetByEmail(practitionerID, email string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{}
	err := i.db.
		Where("practitioner_id = ?", practitionerID).
		Where("lower(email) = lower(?)", email).
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

func (i impl) List(practitionerID string, page, limit int) (list []dbmodels.Client, rowCount int64, err error) {
	list = []dbmodels.Client{}
	tx := i.db.
		Model(&dbmodels.Client{}).
		Where("practitioner_id = ?", practitionerID)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
