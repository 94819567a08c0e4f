package repository

import (
	"hod-management-backend/internal/report"

	"gorm.io/gorm"
)

// where applies a report clause as a WHERE condition, skipping empty clauses.
func where(c report.Clause) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if c.Empty() {
			return db
		}
		return db.Where(c.SQL(), c.Args()...)
	}
}
