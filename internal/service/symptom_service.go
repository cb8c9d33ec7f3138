package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/pkg/symptoms"

	"github.com/google/uuid"
)

// VisionGenerator is the image-capable inference-provider operation.
type VisionGenerator interface {
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) string
}

// visualPatterns are scanned in the analysis text when the provider fails to
// name symptoms outright.
var visualPatterns = []string{
	"rash", "swelling", "discoloration", "wound", "bruise", "blister", "ulcer", "scab",
}

// VisualSentinel stands in when an image yields an analysis but no nameable
// symptom.
const VisualSentinel = "visual abnormality detected"

type ISymptomService interface {
	ExtractFromText(ctx context.Context, req *dto.ExtractSymptomsRequest) (*dto.ExtractSymptomsResponse, error)
	AnalyzeImage(ctx context.Context, userId *uuid.UUID, image []byte, mimeType, lang string) (*dto.AnalyzeImageResponse, error)
}

type symptomService struct {
	extractor *symptoms.Extractor
	gen       TextGenerator
	vision    VisionGenerator
	publisher IPublisherService
	languages ILanguageResolver
	log       logger.ILogger
}

func NewSymptomService(extractor *symptoms.Extractor, gen TextGenerator, vision VisionGenerator, publisher IPublisherService, languages ILanguageResolver, log logger.ILogger) ISymptomService {
	return &symptomService{
		extractor: extractor,
		gen:       gen,
		vision:    vision,
		publisher: publisher,
		languages: languages,
		log:       log,
	}
}

func (s *symptomService) ExtractFromText(ctx context.Context, req *dto.ExtractSymptomsRequest) (*dto.ExtractSymptomsResponse, error) {
	return &dto.ExtractSymptomsResponse{
		Symptoms: s.extractor.Extract(ctx, req.Text),
	}, nil
}

// AnalyzeImage describes the image, derives symptoms from the description and
// asks for a matching condition. Each step degrades independently; the
// response always carries at least a sentinel symptom once an analysis
// exists.
func (s *symptomService) AnalyzeImage(ctx context.Context, userId *uuid.UUID, image []byte, mimeType, lang string) (*dto.AnalyzeImageResponse, error) {
	lang = s.languages.Resolve(ctx, userId, lang)

	analysis := s.vision.GenerateVision(ctx, constant.ImageAnalysisPrompt(lang), image, mimeType)
	if analysis == "" {
		s.log.Warn("symptom", "image analysis unavailable", nil)
		return &dto.AnalyzeImageResponse{
			Analysis: constant.GetFallbackMessages(lang).InfoNotAvailable,
			Symptoms: []string{},
			Disease:  constant.GetFallbackMessages(lang).UnknownDisease,
		}, nil
	}

	extracted := s.symptomsFromAnalysis(ctx, analysis)
	disease := s.gen.GenerateText(ctx, constant.ImageDiseasePrompt(analysis, lang))
	if disease == "" {
		disease = constant.GetFallbackMessages(lang).UnknownDisease
	}

	if userId != nil {
		s.publishAnalysis(ctx, *userId, analysis, extracted, disease, lang)
	}

	return &dto.AnalyzeImageResponse{
		Analysis: analysis,
		Symptoms: extracted,
		Disease:  disease,
	}, nil
}

// publishAnalysis records one completed image analysis for the caller.
// Anonymous uploads are not persisted; failures never reach the response.
func (s *symptomService) publishAnalysis(ctx context.Context, userId uuid.UUID, analysis string, extracted []string, disease, lang string) {
	record := entity.HistoryRecord{
		Id:           uuid.New(),
		UserId:       &userId,
		Type:         entity.HistoryTypeImageAnalysis,
		Symptoms:     extracted,
		FinalDisease: disease,
		Explanation:  analysis,
		Language:     lang,
		CreatedAt:    time.Now(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		s.log.Warn("symptom", "history marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("symptom", "history publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *symptomService) symptomsFromAnalysis(ctx context.Context, analysis string) []string {
	if response := s.gen.GenerateText(ctx, constant.ImageSymptomPrompt(analysis)); response != "" {
		var extracted []string
		for _, fragment := range strings.Split(response, ",") {
			symptom := strings.ToLower(strings.TrimSpace(fragment))
			if len(symptom) > 2 && !strings.Contains(symptom, "symptom") {
				extracted = append(extracted, symptom)
			}
		}
		if normalized := symptoms.Normalize(extracted); len(normalized) > 0 {
			return normalized
		}
	}

	// Pattern scan over the analysis text itself.
	var matched []string
	lower := strings.ToLower(analysis)
	for _, pattern := range visualPatterns {
		if strings.Contains(lower, pattern) {
			matched = append(matched, pattern)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	return []string{VisualSentinel}
}
