package specification

import "gorm.io/gorm"

type ByHistoryType struct {
	Type string
}

func (s ByHistoryType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
