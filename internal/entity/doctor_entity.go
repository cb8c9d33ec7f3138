package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSource tags where a recommended doctor came from.
type DoctorSource string

const (
	DoctorSourceDatabase  DoctorSource = "database"
	DoctorSourceInference DoctorSource = "inference_provider"
)

// Doctor is one directory record. The directory is externally curated; the
// pipeline only reads it. Latitude and Longitude are nil when the record was
// entered without coordinates.
type Doctor struct {
	Id              uuid.UUID
	Name            string
	Specialty       string
	Hospital        string
	Address         string
	City            string
	State           string
	Latitude        *float64
	Longitude       *float64
	Rating          *float64
	ExperienceYears *int
	Contact         *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// RecommendedDoctor is a directory or provider record annotated for one
// response. DistanceKm is nil when the record carries no coordinates.
type RecommendedDoctor struct {
	Name       string
	Specialty  string
	Hospital   string
	Address    string
	City       string
	State      string
	Latitude   *float64
	Longitude  *float64
	Rating     *float64
	DistanceKm *float64
	Source     DoctorSource
}
