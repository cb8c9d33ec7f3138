package mapper

import (
	"time"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/model"
)

type DoctorMapper struct{}

func NewDoctorMapper() *DoctorMapper {
	return &DoctorMapper{}
}

func (m *DoctorMapper) ToEntity(d *model.Doctor) *entity.Doctor {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Doctor{
		Id:              d.Id,
		Name:            d.Name,
		Specialty:       d.Specialty,
		Hospital:        d.Hospital,
		Address:         d.Address,
		City:            d.City,
		State:           d.State,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Rating:          d.Rating,
		ExperienceYears: d.ExperienceYears,
		Contact:         d.Contact,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *DoctorMapper) ToModel(d *entity.Doctor) *model.Doctor {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Doctor{
		Id:              d.Id,
		Name:            d.Name,
		Specialty:       d.Specialty,
		Hospital:        d.Hospital,
		Address:         d.Address,
		City:            d.City,
		State:           d.State,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Rating:          d.Rating,
		ExperienceYears: d.ExperienceYears,
		Contact:         d.Contact,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *DoctorMapper) ToEntities(doctors []*model.Doctor) []*entity.Doctor {
	entities := make([]*entity.Doctor, len(doctors))
	for i, d := range doctors {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
