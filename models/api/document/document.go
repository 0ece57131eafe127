package documentapimodels

import (
	"time"

	"fntp-backend/models"
	dbmodels "fntp-backend/models/db"
)

type DocumentView struct {
	ID          string                `json:"id"`
	ClientID    string                `json:"client_id"`
	Name        string                `json:"name"`
	ContentType string                `json:"content_type"`
	Size        int64                 `json:"size"`
	Status      models.DocumentStatus `json:"status"`
	Analysis    string                `json:"analysis,omitempty"` // результат AI анализа
	Error       string                `json:"error,omitempty"`    // причина ошибки анализа
	CreatedAt   time.Time             `json:"created_at"`
}

func DocumentConvert(rec dbmodels.Document) DocumentView {
	return DocumentView{
		ID:          rec.ID,
		ClientID:    rec.ClientID,
		Name:        rec.Name,
		ContentType: rec.ContentType,
		Size:        rec.Size,
		Status:      rec.Status,
		Analysis:    rec.Analysis,
		Error:       rec.Error,
		CreatedAt:   rec.CreatedAt,
	}
}

type DocumentFile struct {
	Name        string
	ContentType string
	Data        []byte
}
