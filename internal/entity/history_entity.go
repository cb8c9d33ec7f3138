package entity

import (
	"time"

	"github.com/google/uuid"
)

type HistoryType string

const (
	HistoryTypeDiagnosis     HistoryType = "diagnosis"
	HistoryTypeImageAnalysis HistoryType = "image_analysis"
	HistoryTypeChat          HistoryType = "chat"
)

// KnownHistoryType reports whether t names one of the persisted record types.
func KnownHistoryType(t string) bool {
	switch HistoryType(t) {
	case HistoryTypeDiagnosis, HistoryTypeImageAnalysis, HistoryTypeChat:
		return true
	}
	return false
}

// QuestionAnswer is one follow-up question with the caller's yes/no answer.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HistoryRecord captures one completed diagnosis conversation. Writing it is
// best effort: the pipeline responds to the caller whether or not the record
// lands.
type HistoryRecord struct {
	Id             uuid.UUID
	UserId         *uuid.UUID
	Type           HistoryType
	OriginalInput  string
	Symptoms       []string
	InitialDisease string
	FinalDisease   string
	Explanation    string
	Urgency        *string
	DiseaseChanged bool
	ChangeReason   string
	Language       string
	QuestionsAsked []QuestionAnswer
	Doctors        []RecommendedDoctor
	CreatedAt      time.Time
}
