package dbmodels

import (
	"fmt"
	"strings"
	"time"
)

type Client struct {
	BaseModel
	PractitionerID string     `gorm:"type:varchar(36);index"`
	FirstName      string     `gorm:"type:varchar(255)"`
	LastName       string     `gorm:"type:varchar(255)"`
	Email          string     `gorm:"type:varchar(255);index"`
	Phone          string     `gorm:"type:varchar(50)"`
	Gender         string     `gorm:"type:varchar(20)"`
	DateOfBirth    *time.Time `gorm:"type:date"`
	Notes          string
}

func (c Client) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", c.FirstName, c.LastName))
}
