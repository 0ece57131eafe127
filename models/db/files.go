package dbmodels

import (
	"fmt"

	"fntp-backend/models"
)

type Document struct {
	BaseModel
	ClientID    string                `gorm:"type:varchar(36);index"`
	Name        string                `gorm:"type:varchar(255)"`
	ContentType string                `gorm:"type:varchar(100)"`
	Size        int64
	ObjectKey   string                `gorm:"type:varchar(255)"`
	Status      models.DocumentStatus `gorm:"type:varchar(20);index"`
	Analysis    string
	Error       string
}

func DocumentObjectKey(clientID, documentID, fileName string) string {
	return fmt.Sprintf("clients/%s/documents/%s/%s", clientID, documentID, fileName)
}
