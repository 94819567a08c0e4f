package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SchemePlanned   = "PLANNED"
	SchemeActive    = "ACTIVE"
	SchemeCompleted = "COMPLETED"
)

type Scheme struct {
	ID                   uint            `json:"id" gorm:"primaryKey"`
	Name                 string          `json:"name" gorm:"size:255;not null"`
	HODID                *uint           `json:"hod_id" gorm:"column:hod_id"`
	CategoryID           *uint           `json:"category_id"`
	SchemeDescription    string          `json:"scheme_description" gorm:"type:text"`
	SchemeObjective      string          `json:"scheme_objective" gorm:"type:text"`
	SchemeBenefitsDesc   string          `json:"scheme_benefits_desc" gorm:"type:text"`
	SchemeBenefitsPerson int64           `json:"scheme_benefits_person" gorm:"default:0"`
	TotalBudget          float64         `json:"total_budget" gorm:"type:decimal(15,2);default:0"`
	StartDate            *datatypes.Date `json:"start_date"`
	EndDate              *datatypes.Date `json:"end_date"`
	Status               string          `json:"status" gorm:"size:20;default:PLANNED"`
	// SchemeCategory is the legacy free-text label; CategoryID takes precedence in rollups.
	SchemeCategory string    `json:"scheme_category" gorm:"size:255"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	HOD      *HOD      `json:"-" gorm:"foreignKey:HODID;constraint:OnDelete:CASCADE"`
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (Scheme) TableName() string { return "schemes" }

// SchemeBudgetAllocation is a per-financial-year allocation for a scheme.
type SchemeBudgetAllocation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	SchemeID        uint      `json:"scheme_id" gorm:"not null;index"`
	HODID           *uint     `json:"hod_id" gorm:"column:hod_id"`
	HODName         string    `json:"hod_name" gorm:"column:hod_name;size:255"`
	AllocatedAmount float64   `json:"allocated_amount" gorm:"type:decimal(15,2);default:0"`
	SpentAmount     float64   `json:"spent_amount" gorm:"type:decimal(15,2);default:0"`
	FinancialYear   string    `json:"financial_year" gorm:"size:10"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Scheme *Scheme `json:"-" gorm:"foreignKey:SchemeID;constraint:OnDelete:CASCADE"`
}

func (SchemeBudgetAllocation) TableName() string { return "scheme_budget_allocation" }
