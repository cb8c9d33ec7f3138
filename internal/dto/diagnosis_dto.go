package dto

// DiagnoseRequest drives both conversation turns. A fresh request carries
// Text or Symptoms only; the follow-up turn echoes the session context back
// together with exactly three answers.
type DiagnoseRequest struct {
	Text              string        `json:"text"`
	Symptoms          []string      `json:"symptoms"`
	Language          string        `json:"language"`
	FollowUpAnswers   []string      `json:"followUpAnswers"`
	FollowUpQuestions []string      `json:"followUpQuestions"`
	InitialDisease    string        `json:"initialDisease"`
	OriginalInput     string        `json:"originalInput"`
	UserLocation      *UserLocation `json:"userLocation"`
}

type UserLocation struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

// DiagnoseResponse is returned by both turns. UrgencySentence is null and
// RecommendedDoctors empty on the triage turn; both are populated only after
// the follow-up evaluation.
type DiagnoseResponse struct {
	FinalDisease       string              `json:"finalDisease"`
	Explanation        string              `json:"explanation"`
	FollowUpQuestions  []string            `json:"followUpQuestions,omitempty"`
	UrgencySentence    *string             `json:"urgencySentence"`
	DiseaseChanged     bool                `json:"diseaseChanged"`
	ChangeReason       string              `json:"changeReason,omitempty"`
	RecommendedDoctors []RecommendedDoctor `json:"recommendedDoctors"`
}
