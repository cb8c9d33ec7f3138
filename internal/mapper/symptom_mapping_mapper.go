package mapper

import (
	"encoding/json"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/model"

	"gorm.io/datatypes"
)

type SymptomMappingMapper struct{}

func NewSymptomMappingMapper() *SymptomMappingMapper {
	return &SymptomMappingMapper{}
}

func (m *SymptomMappingMapper) ToEntity(s *model.SymptomMapping) *entity.SymptomMapping {
	if s == nil {
		return nil
	}

	var symptoms []string
	// A malformed row degrades to an empty symptom list instead of failing
	// the whole lookup.
	_ = json.Unmarshal(s.Symptoms, &symptoms)

	return &entity.SymptomMapping{
		Id:        s.Id,
		Disease:   s.Disease,
		Symptoms:  symptoms,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SymptomMappingMapper) ToModel(s *entity.SymptomMapping) *model.SymptomMapping {
	if s == nil {
		return nil
	}

	symptoms, _ := json.Marshal(s.Symptoms)

	return &model.SymptomMapping{
		Id:        s.Id,
		Disease:   s.Disease,
		Symptoms:  datatypes.JSON(symptoms),
		CreatedAt: s.CreatedAt,
	}
}

func (m *SymptomMappingMapper) ToEntities(mappings []*model.SymptomMapping) []*entity.SymptomMapping {
	entities := make([]*entity.SymptomMapping, len(mappings))
	for i, s := range mappings {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
