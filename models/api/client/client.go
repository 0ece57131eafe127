package clientapimodels

import (
	"time"

	apimodels "fntp-backend/models/api"
	dbmodels "fntp-backend/models/db"
)

type ClientData struct {
	FirstName   string     `json:"first_name" validate:"required,max=255"`
	LastName    string     `json:"last_name" validate:"required,max=255"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"omitempty,max=50"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=female male other"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Notes       string     `json:"notes"`
}

type ClientView struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	ClientData
}

type ListFilter struct {
	apimodels.Pagination
}

func ClientConvert(rec dbmodels.Client) ClientView {
	return ClientView{
		ID:        rec.ID,
		FullName:  rec.FullName(),
		CreatedAt: rec.CreatedAt,
		ClientData: ClientData{
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			Email:       rec.Email,
			Phone:       rec.Phone,
			Gender:      rec.Gender,
			DateOfBirth: rec.DateOfBirth,
			Notes:       rec.Notes,
		},
	}
}
