package database

import (
	"log"

	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table. Parents come before children so the
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.State{},
		&model.District{},
		&model.Mandal{},
		&model.Category{},
		&model.HOD{},
		&model.Scheme{},
		&model.SchemeBudgetAllocation{},
		&model.Staff{},
		&model.Attendance{},
		&model.Budget{},
		&model.Revenue{},
		&model.KPI{},
		&model.NodalOfficer{},
		&model.User{},
		&model.Notification{},
		&model.Message{},
	)
	if err != nil {
		return err
	}
	log.Println("Database migrated")
	return nil
}
