package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/pkg/diagnosis"
	"ai-health-be/pkg/symptoms"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const followUpCount = 3

// MLPredictor is the local classifier; an empty label means it had nothing
// to say and the pipeline proceeds without it.
type MLPredictor interface {
	Predict(ctx context.Context, symptoms []string) string
}

type IDiagnosisService interface {
	Diagnose(ctx context.Context, userId *uuid.UUID, req *dto.DiagnoseRequest) (*dto.DiagnoseResponse, error)
}

// diagnosisService drives the two-turn diagnosis conversation. The triage
// turn produces an initial disease and exactly three follow-up questions,
// deliberately withholding urgency and doctors until severity is assessed.
// The evaluation turn re-runs the classifier, lets the provider revise the
// disease, locates doctors and publishes the history record.
type diagnosisService struct {
	extractor     *symptoms.Extractor
	predictor     *diagnosis.Predictor
	ml            MLPredictor
	gen           TextGenerator
	doctorService IDoctorService
	publisher     IPublisherService
	languages     ILanguageResolver
	log           logger.ILogger
}

func NewDiagnosisService(
	extractor *symptoms.Extractor,
	predictor *diagnosis.Predictor,
	ml MLPredictor,
	gen TextGenerator,
	doctorService IDoctorService,
	publisher IPublisherService,
	languages ILanguageResolver,
	log logger.ILogger,
) IDiagnosisService {
	return &diagnosisService{
		extractor:     extractor,
		predictor:     predictor,
		ml:            ml,
		gen:           gen,
		doctorService: doctorService,
		publisher:     publisher,
		languages:     languages,
		log:           log,
	}
}

func (s *diagnosisService) Diagnose(ctx context.Context, userId *uuid.UUID, req *dto.DiagnoseRequest) (*dto.DiagnoseResponse, error) {
	lang := s.languages.Resolve(ctx, userId, req.Language)

	if len(req.FollowUpAnswers) == 0 {
		return s.triage(ctx, req, lang)
	}
	if len(req.FollowUpAnswers) != followUpCount {
		return nil, fiber.NewError(fiber.StatusBadRequest, "exactly 3 follow-up answers are required")
	}
	return s.evaluate(ctx, userId, req, lang)
}

func (s *diagnosisService) resolveSymptoms(ctx context.Context, req *dto.DiagnoseRequest) []string {
	resolved := symptoms.Normalize(req.Symptoms)
	if len(resolved) == 0 {
		resolved = s.extractor.Extract(ctx, req.Text)
	}
	if len(resolved) == 0 {
		resolved = []string{symptoms.Sentinel}
	}
	return resolved
}

func (s *diagnosisService) triage(ctx context.Context, req *dto.DiagnoseRequest, lang string) (*dto.DiagnoseResponse, error) {
	symptomList := s.resolveSymptoms(ctx, req)
	fallbacks := constant.GetFallbackMessages(lang)

	mlLabel := s.ml.Predict(ctx, symptomList)
	candidate := s.predictor.Predict(ctx, symptomList, mlLabel)
	s.log.Info("diagnosis", "triage candidate", map[string]interface{}{
		"disease": candidate.Name,
		"source":  string(candidate.Source),
	})

	disease := candidate.Name
	why, causes := "", ""
	questions := fallbackQuestions(fallbacks)

	raw := s.gen.GenerateText(ctx, constant.DiagnosisPrompt(symptomList, candidate.Name, lang))
	if result, ok := parseTriage(raw); ok {
		if result.FinalDisease != "" {
			disease = result.FinalDisease
		}
		why, causes = result.Why, result.Causes
		if len(result.FollowUpQuestions) == followUpCount {
			questions = result.FollowUpQuestions
		}
	} else if raw != "" {
		s.log.Warn("diagnosis", "triage response unparseable", map[string]interface{}{"length": len(raw)})
	}

	// Urgency and doctors are withheld until the follow-up answers arrive.
	return &dto.DiagnoseResponse{
		FinalDisease:       disease,
		Explanation:        formatExplanation(disease, why, causes, symptomList, "", lang),
		FollowUpQuestions:  questions,
		UrgencySentence:    nil,
		RecommendedDoctors: []dto.RecommendedDoctor{},
	}, nil
}

func (s *diagnosisService) evaluate(ctx context.Context, userId *uuid.UUID, req *dto.DiagnoseRequest, lang string) (*dto.DiagnoseResponse, error) {
	symptomList := s.resolveSymptoms(ctx, req)
	fallbacks := constant.GetFallbackMessages(lang)

	initialDisease := req.InitialDisease
	if initialDisease == "" {
		initialDisease = fallbacks.UnknownDisease
	}

	mlLabel := s.ml.Predict(ctx, symptomList)

	disease := initialDisease
	why, causes := "", ""
	urgency := fallbacks.ConsultAfterAnswers
	diseaseChanged := false
	changeReason := ""

	raw := s.gen.GenerateText(ctx, constant.FollowUpEvaluationPrompt(
		symptomList, initialDisease, mlLabel, req.FollowUpQuestions, req.FollowUpAnswers, lang,
	))
	if result, ok := parseEvaluation(raw); ok {
		if result.FinalDisease != "" {
			disease = result.FinalDisease
		}
		why, causes = result.Why, result.Causes
		if usableUrgency(result.Urgency) {
			urgency = result.Urgency
		}
		diseaseChanged = result.DiseaseChanged
		changeReason = result.ChangeReason
	} else if raw != "" {
		s.log.Warn("diagnosis", "evaluation response unparseable", map[string]interface{}{"length": len(raw)})
	}

	doctors, err := s.doctorService.Recommend(ctx, &dto.DoctorRecommendRequest{
		Disease:  disease,
		Urgency:  urgency,
		Language: lang,
		Location: req.UserLocation,
	})
	if err != nil {
		s.log.Warn("diagnosis", "doctor lookup failed", map[string]interface{}{"error": err.Error()})
		doctors = nil
	}
	if doctors == nil {
		doctors = []dto.RecommendedDoctor{}
	}

	noteReason := ""
	if diseaseChanged {
		noteReason = changeReason
	}
	explanation := formatExplanation(disease, why, causes, symptomList, noteReason, lang)

	// Anonymous conversations are answered but never persisted; the whole
	// flow lands as one record only for logged-in callers.
	if userId != nil {
		s.publishHistory(ctx, userId, req, symptomList, initialDisease, disease, explanation, urgency, diseaseChanged, changeReason, lang, doctors)
	}

	return &dto.DiagnoseResponse{
		FinalDisease:       disease,
		Explanation:        explanation,
		UrgencySentence:    &urgency,
		DiseaseChanged:     diseaseChanged,
		ChangeReason:       changeReason,
		RecommendedDoctors: doctors,
	}, nil
}

// publishHistory hands the completed conversation to the consumer for
// persistence. Failures are logged and swallowed; the response must reach the
// caller whether or not the record lands.
func (s *diagnosisService) publishHistory(
	ctx context.Context,
	userId *uuid.UUID,
	req *dto.DiagnoseRequest,
	symptomList []string,
	initialDisease, finalDisease, explanation, urgency string,
	diseaseChanged bool,
	changeReason, lang string,
	doctors []dto.RecommendedDoctor,
) {
	record := entity.HistoryRecord{
		Id:             uuid.New(),
		UserId:         userId,
		Type:           entity.HistoryTypeDiagnosis,
		OriginalInput:  req.OriginalInput,
		Symptoms:       symptomList,
		InitialDisease: initialDisease,
		FinalDisease:   finalDisease,
		Explanation:    explanation,
		Urgency:        &urgency,
		DiseaseChanged: diseaseChanged,
		ChangeReason:   changeReason,
		Language:       lang,
		QuestionsAsked: zipQuestionAnswers(req.FollowUpQuestions, req.FollowUpAnswers),
		Doctors:        toEntityDoctors(doctors),
		CreatedAt:      time.Now(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		s.log.Warn("diagnosis", "history marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Warn("diagnosis", "history publish failed", map[string]interface{}{"error": err.Error()})
	}
}

func fallbackQuestions(fallbacks constant.FallbackMessages) []string {
	return []string{
		fallbacks.SymptomsWorsening,
		fallbacks.SeverePain,
		fallbacks.SuddenStart,
	}
}

func zipQuestionAnswers(questions, answers []string) []entity.QuestionAnswer {
	pairs := make([]entity.QuestionAnswer, 0, len(answers))
	for i, answer := range answers {
		question := ""
		if i < len(questions) {
			question = questions[i]
		}
		pairs = append(pairs, entity.QuestionAnswer{Question: question, Answer: answer})
	}
	return pairs
}

func toEntityDoctors(doctors []dto.RecommendedDoctor) []entity.RecommendedDoctor {
	result := make([]entity.RecommendedDoctor, 0, len(doctors))
	for _, d := range doctors {
		result = append(result, entity.RecommendedDoctor{
			Name:       d.Name,
			Specialty:  d.Specialty,
			Hospital:   d.Hospital,
			Address:    d.Location.Address,
			City:       d.Location.City,
			State:      d.Location.State,
			Latitude:   d.Location.Lat,
			Longitude:  d.Location.Lng,
			Rating:     d.Rating,
			DistanceKm: d.DistanceKm,
			Source:     entity.DoctorSource(d.Source),
		})
	}
	return result
}
