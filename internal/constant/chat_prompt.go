package constant

import "fmt"

// ChatPrompt builds the personalized health-assistant question prompt. Any
// history context is prepended by the caller.
func ChatPrompt(question, lang, userName string) string {
	if userName == "" {
		userName = "the user"
	}
	langName := LanguageName(lang)
	return fmt.Sprintf(`You are a personalized health assistant for %s.
Answer the following question in a helpful, clear, and personalized manner, in %s.

Question: %s

Instructions:
- If the question is about the user's personal health history or previous diagnoses, provide personalized answers based on context
- If the question is generic (about health, symptoms, diseases in general), provide general medical information
- Always be clear, concise, and helpful
- Use plain text only, no markdown formatting
- If you don't have enough information, ask clarifying questions

Provide a clear, helpful answer:`, userName, langName, question)
}

// ImageAnalysisPrompt asks the vision model to describe a medical image.
func ImageAnalysisPrompt(lang string) string {
	langName := LanguageName(lang)
	return fmt.Sprintf(`Analyze this medical image. Identify any visible symptoms, conditions, or abnormalities. Provide a detailed description of what you see, in %s.

IMPORTANT: Use ONLY plain text. NO markdown formatting, NO asterisks (*), NO bold/italic, NO special symbols. Write in clear, simple sentences.`, langName)
}

// ImageSymptomPrompt extracts a comma-separated symptom list from an image
// analysis.
func ImageSymptomPrompt(analysis string) string {
	return fmt.Sprintf(`Based on this medical image analysis: "%s", extract a comma-separated list of specific medical symptoms visible in the image.

Return ONLY symptom names in lowercase, separated by commas. No explanations, no markdown, no symbols, just plain text symptom names.`, analysis)
}

// ImageDiseasePrompt asks for the most likely condition behind an image
// analysis.
func ImageDiseasePrompt(analysis, lang string) string {
	langName := LanguageName(lang)
	return fmt.Sprintf(`Based on this medical image analysis: "%s", identify the most likely disease or medical condition.

Return ONLY the disease name in plain text, in %s. No markdown, no symbols, no formatting, just the disease name.`, analysis, langName)
}
