package dto

type ExtractSymptomsRequest struct {
	Text string `json:"text" validate:"required"`
}

type ExtractSymptomsResponse struct {
	Symptoms []string `json:"symptoms"`
}

// AnalyzeImageResponse carries the visual findings plus the diagnosis the
// pipeline derived from them.
type AnalyzeImageResponse struct {
	Analysis string   `json:"analysis"`
	Symptoms []string `json:"symptoms"`
	Disease  string   `json:"disease"`
}
