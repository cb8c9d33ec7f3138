package dto

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
