package model

import (
	"time"

	"gorm.io/datatypes"
)

// Budget is an allocation for a HOD in a financial year ("YYYY-YY"), optionally located.
type Budget struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	HODID           *uint     `json:"hod_id" gorm:"column:hod_id;index"`
	SchemeID        *uint     `json:"scheme_id"`
	FinancialYear   string    `json:"financial_year" gorm:"size:10;index"`
	AllocatedAmount float64   `json:"allocated_amount" gorm:"type:decimal(15,2);default:0"`
	UtilizedAmount  float64   `json:"utilized_amount" gorm:"type:decimal(15,2);default:0"`
	Category        string    `json:"category" gorm:"size:255"`
	Description     string    `json:"description" gorm:"type:text"`
	StateID         *uint     `json:"state_id"`
	DistrictID      *uint     `json:"district_id"`
	MandalID        *uint     `json:"mandal_id"`
	Village         *string   `json:"village" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Budget) TableName() string { return "budget" }

type Revenue struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	HODID       *uint          `json:"hod_id" gorm:"column:hod_id;index"`
	SchemeID    *uint          `json:"scheme_id"`
	Amount      float64        `json:"amount" gorm:"type:decimal(15,2);default:0"`
	Source      string         `json:"source" gorm:"size:255"`
	Category    string         `json:"category" gorm:"size:255"`
	Date        datatypes.Date `json:"date"`
	Description string         `json:"description" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (Revenue) TableName() string { return "revenue" }

const (
	KPIOnTrack   = "on_track"
	KPIAtRisk    = "at_risk"
	KPIBehind    = "behind"
	KPICompleted = "completed"
)

type KPI struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	HODID         *uint     `json:"hod_id" gorm:"column:hod_id;index"`
	KPIName       string    `json:"kpi_name" gorm:"column:kpi_name;size:255"`
	TargetValue   float64   `json:"target_value" gorm:"type:decimal(15,2)"`
	AchievedValue float64   `json:"achieved_value" gorm:"type:decimal(15,2);default:0"`
	Unit          string    `json:"unit" gorm:"size:50"`
	Period        string    `json:"period" gorm:"size:50"`
	Status        string    `json:"status" gorm:"size:20;default:on_track"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (KPI) TableName() string { return "kpis" }

type NodalOfficer struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Designation string    `json:"designation" gorm:"size:255"`
	Department  string    `json:"department" gorm:"size:255"`
	SchemeID    *uint     `json:"scheme_id"`
	HODID       *uint     `json:"hod_id" gorm:"column:hod_id;index"`
	Email       string    `json:"email" gorm:"size:255"`
	Phone       string    `json:"phone" gorm:"size:20"`
	Status      string    `json:"status" gorm:"size:20;default:active"`
	CreatedAt   time.Time `json:"created_at"`
}

func (NodalOfficer) TableName() string { return "nodal_officers" }
