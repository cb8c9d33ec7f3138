package constant

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguageTelugu  = "te"

	DefaultLanguage = LanguageEnglish
)

func IsSupportedLanguage(lang string) bool {
	switch lang {
	case LanguageEnglish, LanguageHindi, LanguageTelugu:
		return true
	}
	return false
}

// LanguageName returns the English name of a language code, used inside
// prompts to tell the model which language to respond in.
func LanguageName(lang string) string {
	switch lang {
	case LanguageHindi:
		return "Hindi"
	case LanguageTelugu:
		return "Telugu"
	default:
		return "English"
	}
}

// FallbackMessages holds the hard-coded user-facing text substituted when the
// model response is missing, malformed, or too short.
type FallbackMessages struct {
	UnknownDisease      string
	InfoNotAvailable    string
	ConsultDoctor       string
	SymptomsWorsening   string
	SeverePain          string
	SuddenStart         string
	ConsultPromptly     string
	ConsultAfterAnswers string
}

var fallbackMessagesByLanguage = map[string]FallbackMessages{
	LanguageEnglish: {
		UnknownDisease:      "Unknown disease",
		InfoNotAvailable:    "Information not available.",
		ConsultDoctor:       "Consult a doctor for further evaluation.",
		SymptomsWorsening:   "Are your symptoms rapidly worsening?",
		SeverePain:          "Are you experiencing severe pain, vision loss, or breathing difficulty?",
		SuddenStart:         "Did these symptoms start suddenly or after an injury?",
		ConsultPromptly:     "Based on your symptoms, please consult a doctor promptly.",
		ConsultAfterAnswers: "Based on your symptoms and answers, please consult a doctor promptly.",
	},
	LanguageHindi: {
		UnknownDisease:      "अज्ञात बीमारी",
		InfoNotAvailable:    "जानकारी उपलब्ध नहीं है।",
		ConsultDoctor:       "आगे मूल्यांकन के लिए डॉक्टर से परामर्श करें।",
		SymptomsWorsening:   "क्या आपके लक्षण तेजी से बिगड़ रहे हैं?",
		SeverePain:          "क्या आपको गंभीर दर्द, दृष्टि हानि, या सांस लेने में कठिनाई हो रही है?",
		SuddenStart:         "क्या ये लक्षण अचानक शुरू हुए या चोट के बाद?",
		ConsultPromptly:     "आपके लक्षणों के आधार पर, कृपया तुरंत डॉक्टर से परामर्श करें।",
		ConsultAfterAnswers: "आपके लक्षणों और उत्तरों के आधार पर, कृपया तुरंत डॉक्टर से परामर्श करें।",
	},
	LanguageTelugu: {
		UnknownDisease:      "తెలియని వ్యాధి",
		InfoNotAvailable:    "సమాచారం అందుబాటులో లేదు.",
		ConsultDoctor:       "మరింత మూల్యాంకనం కోసం వైద్యుడిని సంప్రదించండి.",
		SymptomsWorsening:   "మీ లక్షణాలు వేగంగా అధ్వాన్నమవుతున్నాయా?",
		SeverePain:          "మీకు తీవ్రమైన నొప్పి, దృష్టి కోల్పోవడం, లేదా శ్వాసక్రియలో ఇబ్బంది ఉందా?",
		SuddenStart:         "ఈ లక్షణాలు అకస్మాత్తుగా ప్రారంభమయ్యాయా లేదా గాయం తర్వాత?",
		ConsultPromptly:     "మీ లక్షణాల ఆధారంగా, దయచేసి వెంటనే వైద్యుడిని సంప్రదించండి.",
		ConsultAfterAnswers: "మీ లక్షణాలు మరియు జవాబుల ఆధారంగా, దయచేసి వెంటనే వైద్యుడిని సంప్రదించండి.",
	},
}

func GetFallbackMessages(lang string) FallbackMessages {
	if msgs, ok := fallbackMessagesByLanguage[lang]; ok {
		return msgs
	}
	return fallbackMessagesByLanguage[LanguageEnglish]
}

// ExplanationHeadings are the localized section labels of the formatted
// diagnosis explanation.
type ExplanationHeadings struct {
	Disease        string
	WhyOccurs      string
	Causes         string
	CommonSymptoms string
	Note           string
}

var explanationHeadingsByLanguage = map[string]ExplanationHeadings{
	LanguageEnglish: {
		Disease:        "Disease:",
		WhyOccurs:      "Why it occurs:",
		Causes:         "Causes:",
		CommonSymptoms: "Common symptoms:",
		Note:           "Note:",
	},
	LanguageHindi: {
		Disease:        "रोग:",
		WhyOccurs:      "यह क्यों होता है:",
		Causes:         "कारण:",
		CommonSymptoms: "सामान्य लक्षण:",
		Note:           "नोट:",
	},
	LanguageTelugu: {
		Disease:        "వ్యాధి:",
		WhyOccurs:      "ఇది ఎందుకు సంభవిస్తుంది:",
		Causes:         "కారణాలు:",
		CommonSymptoms: "సాధారణ లక్షణాలు:",
		Note:           "గమనిక:",
	},
}

func GetExplanationHeadings(lang string) ExplanationHeadings {
	if h, ok := explanationHeadingsByLanguage[lang]; ok {
		return h
	}
	return explanationHeadingsByLanguage[LanguageEnglish]
}
