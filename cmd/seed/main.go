package main

import (
	"context"
	"log"
	"os"
	"time"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/implementation"
	"ai-health-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func floatPtr(v float64) *float64 { return &v }

// Seeds a small symptom-to-disease mapping table and a starter doctor
// directory for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	now := time.Now()

	mappings := []entity.SymptomMapping{
		{Disease: "Common Cold", Symptoms: []string{"cough", "runny nose", "sneezing", "sore throat"}},
		{Disease: "Influenza", Symptoms: []string{"fever", "body ache", "chills", "fatigue", "cough"}},
		{Disease: "Migraine", Symptoms: []string{"headache", "nausea", "sensitivity to light"}},
		{Disease: "Gastritis", Symptoms: []string{"stomach pain", "nausea", "bloating", "loss of appetite"}},
		{Disease: "Dengue", Symptoms: []string{"fever", "rash", "joint pain", "headache"}},
		{Disease: "Asthma", Symptoms: []string{"shortness of breath", "wheezing", "chest tightness"}},
		{Disease: "Hypertension", Symptoms: []string{"headache", "dizziness", "blurred vision"}},
	}

	mappingRepo := implementation.NewSymptomMappingRepository(db)
	for i := range mappings {
		mappings[i].Id = uuid.New()
		mappings[i].CreatedAt = now
		if err := mappingRepo.Create(ctx, &mappings[i]); err != nil {
			log.Printf("Warn: seed mapping %q failed: %v", mappings[i].Disease, err)
		}
	}

	doctors := []entity.Doctor{
		{
			Name: "Dr. Ananya Rao", Specialty: "General Physician", Hospital: "City Care Hospital",
			Address: "12 MG Road", City: "Bengaluru", State: "Karnataka",
			Latitude: floatPtr(12.9716), Longitude: floatPtr(77.5946),
		},
		{
			Name: "Dr. Vikram Shetty", Specialty: "Cardiologist, Heart Disease", Hospital: "Pulse Heart Institute",
			Address: "45 Residency Road", City: "Bengaluru", State: "Karnataka",
			Latitude: floatPtr(12.9352), Longitude: floatPtr(77.6245),
		},
		{
			Name: "Dr. Meera Iyer", Specialty: "Dermatologist, Skin Infection", Hospital: "Skin and Care Clinic",
			Address: "8 Brigade Road", City: "Bengaluru", State: "Karnataka",
			Latitude: floatPtr(12.9719), Longitude: floatPtr(77.6073),
		},
		{
			Name: "Dr. Arjun Nair", Specialty: "Pulmonologist, Asthma", Hospital: "Breathe Well Hospital",
			Address: "23 Whitefield Main Road", City: "Bengaluru", State: "Karnataka",
			Latitude: floatPtr(12.9698), Longitude: floatPtr(77.7500),
		},
	}

	doctorRepo := implementation.NewDoctorRepository(db)
	for i := range doctors {
		doctors[i].Id = uuid.New()
		doctors[i].CreatedAt = now
		if err := doctorRepo.Create(ctx, &doctors[i]); err != nil {
			log.Printf("Warn: seed doctor %q failed: %v", doctors[i].Name, err)
		}
	}

	log.Println("Seeding completed")
}
