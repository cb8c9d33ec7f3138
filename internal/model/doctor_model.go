package model

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Specialty       string    `gorm:"type:varchar(255);not null;index"`
	Hospital        string    `gorm:"type:varchar(255)"`
	Address         string    `gorm:"type:text"`
	City            string    `gorm:"type:varchar(100)"`
	State           string    `gorm:"type:varchar(100)"`
	Latitude        *float64  `gorm:"type:double precision"`
	Longitude       *float64  `gorm:"type:double precision"`
	Rating          *float64  `gorm:"type:double precision"`
	ExperienceYears *int
	Contact         *string   `gorm:"type:varchar(100)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (Doctor) TableName() string {
	return "doctors"
}
