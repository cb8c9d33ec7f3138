package mapper

import (
	"time"

	"ai-health-be/internal/entity"
	"ai-health-be/internal/model"

	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:                u.Id,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FullName:          u.FullName,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
		IsDeleted:         u.DeletedAt.Valid,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	} else if u.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:                u.Id,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FullName:          u.FullName,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         updatedAt,
		DeletedAt:         deletedAt,
	}
}
