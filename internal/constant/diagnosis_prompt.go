package constant

import (
	"fmt"
	"strings"
)

const plainTextRules = `CRITICAL FORMATTING RULES:
- Use ONLY plain text - NO markdown formatting
- NO asterisks (*), underscores (_), or any markdown symbols
- NO bold, italic, or special formatting
- Write in clear, simple sentences
- No bullet points, no lists, just flowing text`

func symptomLines(symptoms []string) string {
	lines := make([]string, 0, len(symptoms))
	for _, s := range symptoms {
		lines = append(lines, "- "+s)
	}
	return strings.Join(lines, "\n")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

// DiagnosisPrompt builds the single triage call: disease, why, causes,
// exactly 3 yes/no follow-up questions and one urgency sentence, as JSON, in
// the user's language.
func DiagnosisPrompt(symptoms []string, mlDisease, lang string) string {
	langName := LanguageName(lang)
	return fmt.Sprintf(`
You are a medical diagnosis and triage assistant.

IMPORTANT: The patient symptoms below may be in English, Hindi, Telugu, or any other language. Understand and process them correctly regardless of the language.

Patient symptoms:
%s

ML predicted disease (may be null or wrong):
%s

Tasks:
1. Predict the most medically likely disease (respond with disease name in %s)
2. Ask EXACTLY 3 yes/no follow-up questions specific to this disease to assess urgency (in %s)
3. Decide urgency level (in %s)

Respond ONLY in valid JSON:
{
  "finalDisease": "",
  "why": "",
  "causes": "",
  "followUpQuestions": ["", "", ""],
  "urgency": "ONE clear, actionable sentence"
}

%s
- Disease name, explanations, questions and urgency must ALL be in %s
- Questions must be disease-specific emergency indicators
- Urgency must be clear (seek immediate care / consult doctor soon / monitor at home)
- "why" and "causes" should be 2-3 clear sentences each, plain text only
`, symptomLines(symptoms), orNone(mlDisease), langName, langName, langName, plainTextRules, langName)
}

// FollowUpEvaluationPrompt builds the re-evaluation call with the answered
// follow-up questions, asking for a possibly revised disease, urgency and a
// change explanation, as JSON, in the user's language.
func FollowUpEvaluationPrompt(symptoms []string, initialDisease, mlDisease string, questions, answers []string, lang string) string {
	langName := LanguageName(lang)

	qa := make([]string, 0, len(answers))
	for i, answer := range answers {
		if i < len(questions) {
			qa = append(qa, fmt.Sprintf("Q%d: %s A%d: %s", i+1, questions[i], i+1, answer))
		} else {
			qa = append(qa, fmt.Sprintf("Q%d: %s", i+1, answer))
		}
	}

	initial := initialDisease
	if initial == "" {
		initial = "Not provided"
	}

	return fmt.Sprintf(`
You are a medical diagnosis and triage assistant.

Patient symptoms:
%s

Previous disease prediction (may have changed based on answers):
%s

ML predicted disease (may be null or wrong):
%s

Follow-up questions and patient answers:
%s

Tasks:
1. Re-evaluate and predict the most medically likely disease considering the follow-up answers (disease may have changed)
2. Provide updated urgency level based on the answers
3. Explain why the disease prediction might have changed (if it did)

Respond ONLY in valid JSON:
{
  "finalDisease": "",
  "why": "",
  "causes": "",
  "urgency": "ONE clear, actionable sentence",
  "diseaseChanged": true/false,
  "changeReason": "Brief explanation if disease changed"
}

%s
- Disease name and all explanations must be in %s
- Disease must not be empty
- If follow-up answers suggest a different disease, update finalDisease accordingly
- Urgency must be clear (seek immediate care / consult doctor soon / monitor at home)
- "why" and "causes" should be 2-3 clear sentences each, plain text only
- "changeReason" should be 1-2 clear sentences if disease changed, plain text only
`, symptomLines(symptoms), initial, orNone(mlDisease), strings.Join(qa, "\n"), plainTextRules, langName)
}

// PredictDiseasePrompt asks for the provider's own best-label guess, plain
// disease name only.
func PredictDiseasePrompt(symptoms []string) string {
	return fmt.Sprintf(`You are a medical AI.
Symptoms: %s.

Return ONLY the most likely disease name as plain text. NO markdown, NO asterisks, NO symbols, NO formatting - just the disease name.`, strings.Join(symptoms, ", "))
}

// ArbitrationPrompt asks the provider to pick between two conflicting labels.
func ArbitrationPrompt(symptoms []string, diseaseOne, diseaseTwo string) string {
	return fmt.Sprintf(`Symptoms: %s
Disease 1: %s
Disease 2: %s
Which disease is more medically probable?

Return ONLY the disease name in plain text. NO markdown, NO asterisks, NO symbols, just the disease name.`, strings.Join(symptoms, ", "), diseaseOne, diseaseTwo)
}

// SymptomExtractionPrompt asks for a lowercase comma-separated symptom list.
func SymptomExtractionPrompt(text string) string {
	return fmt.Sprintf(`Extract only medical symptom names from this text:
"%s"

Return a comma-separated list in lowercase.
No sentences. No explanations.`, text)
}

// GenericConditionPrompt is the last-resort identification query used when
// every other prediction source came up empty.
func GenericConditionPrompt(symptoms []string) string {
	return fmt.Sprintf(`Identify the most likely medical condition from this description: "%s".

Return ONLY the condition name in plain text. NO markdown, NO symbols, just the name.`, strings.Join(symptoms, ", "))
}
