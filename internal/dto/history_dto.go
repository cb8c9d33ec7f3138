package dto

import (
	"time"

	"github.com/google/uuid"
)

type HistoryQuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type HistoryItemResponse struct {
	Id             uuid.UUID               `json:"id"`
	Type           string                  `json:"type"`
	OriginalInput  string                  `json:"originalInput"`
	Symptoms       []string                `json:"symptoms"`
	InitialDisease string                  `json:"initialDisease"`
	FinalDisease   string                  `json:"finalDisease"`
	Explanation    string                  `json:"explanation"`
	Urgency        *string                 `json:"urgency"`
	DiseaseChanged bool                    `json:"diseaseChanged"`
	ChangeReason   string                  `json:"changeReason,omitempty"`
	QuestionsAsked []HistoryQuestionAnswer `json:"questionsAsked"`
	Doctors        []RecommendedDoctor     `json:"doctors"`
	CreatedAt      time.Time               `json:"createdAt"`
}

type ListHistoryResponse struct {
	Items []HistoryItemResponse `json:"items"`
	Total int64                 `json:"total"`
}
