package service

import (
	"encoding/json"
	"strings"

	"ai-health-be/internal/constant"
)

// triageResult is the structured shape requested from the inference provider
// on the first conversation turn.
type triageResult struct {
	FinalDisease      string   `json:"finalDisease"`
	Why               string   `json:"why"`
	Causes            string   `json:"causes"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	Urgency           string   `json:"urgency"`
}

// evaluationResult extends the triage shape with the re-evaluation fields.
type evaluationResult struct {
	triageResult
	DiseaseChanged bool   `json:"diseaseChanged"`
	ChangeReason   string `json:"changeReason"`
}

func parseTriage(raw string) (*triageResult, bool) {
	var result triageResult
	if err := json.Unmarshal([]byte(firstJSONObject(raw)), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func parseEvaluation(raw string) (*evaluationResult, bool) {
	var result evaluationResult
	if err := json.Unmarshal([]byte(firstJSONObject(raw)), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// firstJSONObject trims any prose the model wrapped around the first {...}
// block. Parse failure downstream is expected and handled by fallbacks.
func firstJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}

const minUrgencyLength = 10

// usableUrgency rejects empty or truncated urgency sentences so a fallback
// message can take their place.
func usableUrgency(urgency string) bool {
	return len(strings.TrimSpace(urgency)) >= minUrgencyLength
}

// formatExplanation renders the explanation sections under the localized
// headings. The heading strings carry their own colon; disease, symptoms and
// the note are inline, why and causes go on the following line. The note only
// appears when the evaluation turn changed the disease.
func formatExplanation(disease, why, causes string, symptoms []string, changeReason, lang string) string {
	headings := constant.GetExplanationHeadings(lang)
	fallbacks := constant.GetFallbackMessages(lang)

	if strings.TrimSpace(why) == "" {
		why = fallbacks.InfoNotAvailable
	}
	if strings.TrimSpace(causes) == "" {
		causes = fallbacks.InfoNotAvailable
	}

	parts := []string{
		headings.Disease + " " + disease,
		"",
		headings.WhyOccurs,
		why,
		"",
		headings.Causes,
		causes,
		"",
		headings.CommonSymptoms + " " + strings.Join(symptoms, ", "),
	}
	if strings.TrimSpace(changeReason) != "" {
		parts = append(parts, "", headings.Note+" "+changeReason)
	}
	return strings.Join(parts, "\n")
}
