package mapper

import (
	"encoding/json"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/model"

	"gorm.io/datatypes"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToEntity(h *model.HistoryRecord) *entity.HistoryRecord {
	if h == nil {
		return nil
	}

	var symptoms []string
	_ = json.Unmarshal(h.Symptoms, &symptoms)

	var questions []entity.QuestionAnswer
	_ = json.Unmarshal(h.QuestionsAsked, &questions)

	var doctors []entity.RecommendedDoctor
	_ = json.Unmarshal(h.Doctors, &doctors)

	return &entity.HistoryRecord{
		Id:             h.Id,
		UserId:         h.UserId,
		Type:           entity.HistoryType(h.Type),
		OriginalInput:  h.OriginalInput,
		Symptoms:       symptoms,
		InitialDisease: h.InitialDisease,
		FinalDisease:   h.FinalDisease,
		Explanation:    h.Explanation,
		Urgency:        h.Urgency,
		DiseaseChanged: h.DiseaseChanged,
		ChangeReason:   h.ChangeReason,
		Language:       h.Language,
		QuestionsAsked: questions,
		Doctors:        doctors,
		CreatedAt:      h.CreatedAt,
	}
}

func (m *HistoryMapper) ToModel(h *entity.HistoryRecord) *model.HistoryRecord {
	if h == nil {
		return nil
	}

	symptoms, _ := json.Marshal(h.Symptoms)
	questions, _ := json.Marshal(h.QuestionsAsked)
	doctors, _ := json.Marshal(h.Doctors)

	return &model.HistoryRecord{
		Id:             h.Id,
		UserId:         h.UserId,
		Type:           string(h.Type),
		OriginalInput:  h.OriginalInput,
		Symptoms:       datatypes.JSON(symptoms),
		InitialDisease: h.InitialDisease,
		FinalDisease:   h.FinalDisease,
		Explanation:    h.Explanation,
		Urgency:        h.Urgency,
		DiseaseChanged: h.DiseaseChanged,
		ChangeReason:   h.ChangeReason,
		Language:       h.Language,
		QuestionsAsked: questions,
		Doctors:        doctors,
		CreatedAt:      h.CreatedAt,
	}
}

func (m *HistoryMapper) ToEntities(records []*model.HistoryRecord) []*entity.HistoryRecord {
	entities := make([]*entity.HistoryRecord, len(records))
	for i, h := range records {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
