package specification

import (
	"strings"

	"gorm.io/gorm"
)

// BySpecialtyLike matches doctors whose specialty contains the term,
// case-insensitively. The disease name itself is used as the term.
type BySpecialtyLike struct {
	Term string
}

func (s BySpecialtyLike) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(specialty) LIKE ?", "%"+strings.ToLower(s.Term)+"%")
}
