package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HistoryRecord struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         *uuid.UUID     `gorm:"type:uuid;index"`
	Type           string         `gorm:"type:varchar(50);not null;index"`
	OriginalInput  string         `gorm:"type:text"`
	Symptoms       datatypes.JSON `gorm:"type:jsonb"`
	InitialDisease string         `gorm:"type:varchar(255)"`
	FinalDisease   string         `gorm:"type:varchar(255);not null"`
	Explanation    string         `gorm:"type:text"`
	Urgency        *string        `gorm:"type:text"`
	DiseaseChanged bool           `gorm:"default:false"`
	ChangeReason   string         `gorm:"type:text"`
	Language       string         `gorm:"type:varchar(10);not null;default:'en'"`
	QuestionsAsked datatypes.JSON `gorm:"type:jsonb"`
	Doctors        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index"`
}

func (HistoryRecord) TableName() string {
	return "history_records"
}
