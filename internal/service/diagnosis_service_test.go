package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/pkg/diagnosis"
	"ai-health-be/pkg/symptoms"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// scriptedGen routes prompts to canned answers by distinctive prompt
// phrases, so one fake serves extraction, prediction, triage and evaluation.
type scriptedGen struct {
	predictAnswer    string
	arbitrateAnswer  string
	triageAnswer     string
	evaluationAnswer string
	arbitrations     int
}

func (g *scriptedGen) GenerateText(_ context.Context, prompt string) string {
	switch {
	case strings.Contains(prompt, "more medically probable"):
		g.arbitrations++
		return g.arbitrateAnswer
	case strings.Contains(prompt, "Ask EXACTLY 3 yes/no follow-up questions"):
		return g.triageAnswer
	case strings.Contains(prompt, "Re-evaluate and predict"):
		return g.evaluationAnswer
	case strings.Contains(prompt, "Extract only medical symptom names"):
		return ""
	default:
		return g.predictAnswer
	}
}

type fakeML struct {
	label string
	calls int
}

func (m *fakeML) Predict(_ context.Context, _ []string) string {
	m.calls++
	return m.label
}

type fakeDoctorService struct {
	doctors []dto.RecommendedDoctor
	calls   int
}

func (f *fakeDoctorService) Recommend(_ context.Context, _ *dto.DoctorRecommendRequest) ([]dto.RecommendedDoctor, error) {
	f.calls++
	return f.doctors, nil
}

func (f *fakeDoctorService) Directions(_ *dto.DirectionsRequest) *dto.DirectionsResponse {
	return nil
}

type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

type emptyVocab struct{}

func (emptyVocab) SymptomVocabulary(_ context.Context) []string { return nil }

type emptyMappings struct{}

func (emptyMappings) Mappings(_ context.Context) []diagnosis.Mapping { return nil }

// requestLanguages resolves from the request alone, bypassing profile lookup.
type requestLanguages struct{}

func (requestLanguages) Resolve(_ context.Context, _ *uuid.UUID, requested string) string {
	if constant.IsSupportedLanguage(requested) {
		return requested
	}
	return constant.DefaultLanguage
}

func newTestDiagnosisService(gen *scriptedGen, ml *fakeML, doctors *fakeDoctorService, publisher *fakePublisher) IDiagnosisService {
	nop := logger.NewNopLogger()
	return NewDiagnosisService(
		symptoms.NewExtractor(gen, emptyVocab{}, nop),
		diagnosis.NewPredictor(gen, emptyMappings{}, nop),
		ml,
		gen,
		doctors,
		publisher,
		requestLanguages{},
		nop,
	)
}

func triageJSON(disease string) string {
	return `{
		"finalDisease": "` + disease + `",
		"why": "A viral infection of the upper airways.",
		"causes": "Influenza viruses spread by droplets.",
		"followUpQuestions": ["Are symptoms worsening?", "Do you have trouble breathing?", "Did it start suddenly?"],
		"urgency": "Consult a doctor if symptoms persist beyond three days."
	}`
}

func TestDiagnoseTriage(t *testing.T) {
	gen := &scriptedGen{predictAnswer: "Flu", triageAnswer: triageJSON("Flu")}
	ml := &fakeML{label: "Flu"}
	doctors := &fakeDoctorService{}
	publisher := &fakePublisher{}
	svc := newTestDiagnosisService(gen, ml, doctors, publisher)

	res, err := svc.Diagnose(context.Background(), nil, &dto.DiagnoseRequest{
		Symptoms: []string{"fever", "cough"},
		Language: "en",
	})

	require.NoError(t, err)
	require.Equal(t, "Flu", res.FinalDisease)
	require.Len(t, res.FollowUpQuestions, 3)
	require.Nil(t, res.UrgencySentence)
	require.Empty(t, res.RecommendedDoctors)

	// Agreeing labels never trigger arbitration; doctors and history wait
	// for the follow-up turn.
	require.Zero(t, gen.arbitrations)
	require.Zero(t, doctors.calls)
	require.Empty(t, publisher.payloads)
	require.Equal(t, 1, ml.calls)
}

func TestDiagnoseTriageUnparseableFallsBack(t *testing.T) {
	gen := &scriptedGen{predictAnswer: "Flu", triageAnswer: "I cannot answer that."}
	svc := newTestDiagnosisService(gen, &fakeML{label: "Flu"}, &fakeDoctorService{}, &fakePublisher{})

	res, err := svc.Diagnose(context.Background(), nil, &dto.DiagnoseRequest{
		Symptoms: []string{"fever"},
	})

	require.NoError(t, err)
	require.Equal(t, "Flu", res.FinalDisease)

	fallbacks := constant.GetFallbackMessages(constant.DefaultLanguage)
	require.Equal(t, []string{
		fallbacks.SymptomsWorsening,
		fallbacks.SeverePain,
		fallbacks.SuddenStart,
	}, res.FollowUpQuestions)
	require.Nil(t, res.UrgencySentence)
}

func TestDiagnosePartialAnswersRejected(t *testing.T) {
	gen := &scriptedGen{}
	doctors := &fakeDoctorService{}
	publisher := &fakePublisher{}
	svc := newTestDiagnosisService(gen, &fakeML{}, doctors, publisher)

	_, err := svc.Diagnose(context.Background(), nil, &dto.DiagnoseRequest{
		Symptoms:        []string{"fever"},
		FollowUpAnswers: []string{"yes", "no"},
	})

	require.Error(t, err)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	require.Equal(t, fiber.StatusBadRequest, fiberErr.Code)

	// An incomplete answer set never reaches evaluation.
	require.Zero(t, doctors.calls)
	require.Empty(t, publisher.payloads)
}

func TestDiagnoseEvaluation(t *testing.T) {
	gen := &scriptedGen{
		predictAnswer: "Dengue",
		evaluationAnswer: `{
			"finalDisease": "Dengue",
			"why": "The answers point to a mosquito-borne infection.",
			"causes": "Dengue virus transmitted by Aedes mosquitoes.",
			"urgency": "Seek medical care within 24 hours.",
			"diseaseChanged": true,
			"changeReason": "High fever with rash changed the assessment."
		}`,
	}
	doctors := &fakeDoctorService{doctors: []dto.RecommendedDoctor{{Name: "Dr. Rao", Source: "database"}}}
	publisher := &fakePublisher{}
	svc := newTestDiagnosisService(gen, &fakeML{label: "Flu"}, doctors, publisher)

	userId := uuid.New()
	res, err := svc.Diagnose(context.Background(), &userId, &dto.DiagnoseRequest{
		Symptoms:          []string{"fever", "rash"},
		InitialDisease:    "Flu",
		FollowUpQuestions: []string{"q1", "q2", "q3"},
		FollowUpAnswers:   []string{"yes", "yes", "no"},
	})

	require.NoError(t, err)
	require.Equal(t, "Dengue", res.FinalDisease)
	require.NotNil(t, res.UrgencySentence)
	require.Equal(t, "Seek medical care within 24 hours.", *res.UrgencySentence)
	require.True(t, res.DiseaseChanged)
	require.Len(t, res.RecommendedDoctors, 1)
	require.Equal(t, 1, doctors.calls)

	// Exactly one history record was published, after doctors were known.
	require.Len(t, publisher.payloads, 1)
	var record entity.HistoryRecord
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &record))
	require.NotNil(t, record.UserId)
	require.Equal(t, userId, *record.UserId)
	require.Equal(t, "Dengue", record.FinalDisease)
	require.Equal(t, "Flu", record.InitialDisease)
	require.Len(t, record.QuestionsAsked, 3)
	require.Len(t, record.Doctors, 1)
}

func TestDiagnoseEvaluationAnonymousNotPersisted(t *testing.T) {
	gen := &scriptedGen{
		predictAnswer: "Flu",
		evaluationAnswer: `{
			"finalDisease": "Flu",
			"urgency": "Consult a doctor if the fever lasts.",
			"diseaseChanged": false
		}`,
	}
	publisher := &fakePublisher{}
	svc := newTestDiagnosisService(gen, &fakeML{label: "Flu"}, &fakeDoctorService{}, publisher)

	res, err := svc.Diagnose(context.Background(), nil, &dto.DiagnoseRequest{
		Symptoms:          []string{"fever"},
		InitialDisease:    "Flu",
		FollowUpQuestions: []string{"q1", "q2", "q3"},
		FollowUpAnswers:   []string{"no", "no", "no"},
	})

	require.NoError(t, err)
	require.Equal(t, "Flu", res.FinalDisease)
	require.NotNil(t, res.UrgencySentence)

	// Records belong to users; without a caller there is nothing to own one.
	require.Empty(t, publisher.payloads)
}

func TestDiagnoseEvaluationShortUrgencyReplaced(t *testing.T) {
	gen := &scriptedGen{
		predictAnswer: "Flu",
		evaluationAnswer: `{
			"finalDisease": "Flu",
			"urgency": "go",
			"diseaseChanged": false
		}`,
	}
	svc := newTestDiagnosisService(gen, &fakeML{label: "Flu"}, &fakeDoctorService{}, &fakePublisher{})

	res, err := svc.Diagnose(context.Background(), nil, &dto.DiagnoseRequest{
		Symptoms:          []string{"fever"},
		InitialDisease:    "Flu",
		FollowUpQuestions: []string{"q1", "q2", "q3"},
		FollowUpAnswers:   []string{"no", "no", "no"},
	})

	require.NoError(t, err)
	require.NotNil(t, res.UrgencySentence)
	require.Equal(t, constant.GetFallbackMessages(constant.DefaultLanguage).ConsultAfterAnswers, *res.UrgencySentence)
}
