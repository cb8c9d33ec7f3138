package entity

import (
	"time"

	"github.com/google/uuid"
)

// SymptomMapping is one row of the static symptom-to-disease store used as a
// prediction source of last resort and as the extraction vocabulary.
type SymptomMapping struct {
	Id        uuid.UUID
	Disease   string
	Symptoms  []string
	CreatedAt time.Time
}
