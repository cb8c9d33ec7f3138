package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SymptomMapping struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Disease   string         `gorm:"type:varchar(255);not null;index"`
	Symptoms  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (SymptomMapping) TableName() string {
	return "symptom_mappings"
}
