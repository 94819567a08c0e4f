// Package dto holds the request bodies accepted by the CRUD endpoints and their
// conversion into models.
package dto

import (
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/report"
)

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255" conform:"trim"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r CategoryRequest) ToModel() model.Category {
	return model.Category{
		Name:        r.Name,
		Description: r.Description,
		Status:      orDefault(r.Status, model.StatusActive),
	}
}

type HODRequest struct {
	Name       string `json:"name" validate:"required,max=255" conform:"trim"`
	Department string `json:"department" validate:"max=255"`
	CategoryID *uint  `json:"category_id"`
	Email      string `json:"email" validate:"omitempty,email" conform:"email"`
	Phone      string `json:"phone" validate:"max=20"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r HODRequest) ToModel() model.HOD {
	return model.HOD{
		Name:       r.Name,
		Department: r.Department,
		CategoryID: r.CategoryID,
		Email:      r.Email,
		Phone:      r.Phone,
		Status:     orDefault(r.Status, model.StatusActive),
	}
}

type SchemeRequest struct {
	Name                 string  `json:"name" validate:"required,max=255" conform:"trim"`
	HODID                *uint   `json:"hod_id"`
	CategoryID           *uint   `json:"category_id"`
	SchemeDescription    string  `json:"scheme_description"`
	SchemeObjective      string  `json:"scheme_objective"`
	SchemeBenefitsDesc   string  `json:"scheme_benefits_desc"`
	SchemeBenefitsPerson int64   `json:"scheme_benefits_person" validate:"gte=0"`
	TotalBudget          float64 `json:"total_budget" validate:"gte=0"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	Status               string  `json:"status" validate:"omitempty,oneof=PLANNED ACTIVE COMPLETED"`
	SchemeCategory       string  `json:"scheme_category"`
}

func (r SchemeRequest) ToModel() (model.Scheme, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return model.Scheme{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return model.Scheme{}, err
	}
	return model.Scheme{
		Name:                 r.Name,
		HODID:                r.HODID,
		CategoryID:           r.CategoryID,
		SchemeDescription:    r.SchemeDescription,
		SchemeObjective:      r.SchemeObjective,
		SchemeBenefitsDesc:   r.SchemeBenefitsDesc,
		SchemeBenefitsPerson: r.SchemeBenefitsPerson,
		TotalBudget:          r.TotalBudget,
		StartDate:            start,
		EndDate:              end,
		Status:               orDefault(r.Status, model.SchemePlanned),
		SchemeCategory:       r.SchemeCategory,
	}, nil
}

type AllocationRequest struct {
	HODID           *uint   `json:"hod_id"`
	HODName         string  `json:"hod_name"`
	AllocatedAmount float64 `json:"allocated_amount" validate:"gte=0"`
	SpentAmount     float64 `json:"spent_amount" validate:"gte=0"`
	FinancialYear   string  `json:"financial_year" validate:"required"`
}

func (r AllocationRequest) ToModel(schemeID uint) model.SchemeBudgetAllocation {
	return model.SchemeBudgetAllocation{
		SchemeID:        schemeID,
		HODID:           r.HODID,
		HODName:         r.HODName,
		AllocatedAmount: r.AllocatedAmount,
		SpentAmount:     r.SpentAmount,
		FinancialYear:   financialYear(r.FinancialYear),
	}
}

type StaffRequest struct {
	Name        string `json:"name" validate:"required,max=255" conform:"trim"`
	EmployeeID  string `json:"employee_id" validate:"max=50"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	CategoryID  *uint  `json:"category_id"`
	HODID       *uint  `json:"hod_id"`
	Email       string `json:"email" validate:"omitempty,email" conform:"email"`
	Phone       string `json:"phone" validate:"max=20"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r StaffRequest) ToModel() (model.Staff, error) {
	joined, err := ParseDate(r.JoiningDate)
	if err != nil {
		return model.Staff{}, err
	}
	return model.Staff{
		Name:        r.Name,
		EmployeeID:  r.EmployeeID,
		Designation: r.Designation,
		Department:  r.Department,
		CategoryID:  r.CategoryID,
		HODID:       r.HODID,
		Email:       r.Email,
		Phone:       r.Phone,
		JoiningDate: joined,
		Status:      orDefault(r.Status, model.StatusActive),
	}, nil
}

type BudgetRequest struct {
	HODID           *uint   `json:"hod_id"`
	SchemeID        *uint   `json:"scheme_id"`
	FinancialYear   string  `json:"financial_year" validate:"required"`
	AllocatedAmount float64 `json:"allocated_amount" validate:"gte=0"`
	UtilizedAmount  float64 `json:"utilized_amount" validate:"gte=0"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	StateID         *uint   `json:"state_id"`
	DistrictID      *uint   `json:"district_id"`
	MandalID        *uint   `json:"mandal_id"`
	Village         *string `json:"village"`
}

func (r BudgetRequest) ToModel() model.Budget {
	village := r.Village
	if village != nil && *village == "" {
		village = nil
	}
	return model.Budget{
		HODID:           r.HODID,
		SchemeID:        r.SchemeID,
		FinancialYear:   financialYear(r.FinancialYear),
		AllocatedAmount: r.AllocatedAmount,
		UtilizedAmount:  r.UtilizedAmount,
		Category:        r.Category,
		Description:     r.Description,
		StateID:         zeroToNil(r.StateID),
		DistrictID:      zeroToNil(r.DistrictID),
		MandalID:        zeroToNil(r.MandalID),
		Village:         village,
	}
}

// financialYear stores bare years in the "YYYY-YY" convention and keeps anything
// else as sent.
func financialYear(v string) string {
	if fy, ok := report.FinancialYear(v); ok {
		return fy
	}
	return v
}

func zeroToNil(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

type AttendanceRequest struct {
	StaffID  uint   `json:"staff_id" validate:"required"`
	HODID    *uint  `json:"hod_id"`
	Date     string `json:"date" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=present absent half_day leave late"`
	CheckIn  string `json:"check_in" validate:"max=8"`
	CheckOut string `json:"check_out" validate:"max=8"`
	Remarks  string `json:"remarks"`
}

func (r AttendanceRequest) ToModel() (model.Attendance, error) {
	day, err := ParseDate(r.Date)
	if err != nil {
		return model.Attendance{}, err
	}
	return model.Attendance{
		StaffID:  r.StaffID,
		HODID:    r.HODID,
		Date:     *day,
		Status:   orDefault(r.Status, model.AttendancePresent),
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Remarks:  r.Remarks,
	}, nil
}

type RevenueRequest struct {
	HODID       *uint   `json:"hod_id"`
	SchemeID    *uint   `json:"scheme_id"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Source      string  `json:"source"`
	Category    string  `json:"category"`
	Date        string  `json:"date" validate:"required"`
	Description string  `json:"description"`
}

func (r RevenueRequest) ToModel() (model.Revenue, error) {
	day, err := ParseDate(r.Date)
	if err != nil {
		return model.Revenue{}, err
	}
	return model.Revenue{
		HODID:       r.HODID,
		SchemeID:    r.SchemeID,
		Amount:      r.Amount,
		Source:      r.Source,
		Category:    r.Category,
		Date:        *day,
		Description: r.Description,
	}, nil
}

type KPIRequest struct {
	HODID         *uint   `json:"hod_id"`
	KPIName       string  `json:"kpi_name" validate:"required,max=255"`
	TargetValue   float64 `json:"target_value"`
	AchievedValue float64 `json:"achieved_value"`
	Unit          string  `json:"unit" validate:"max=50"`
	Period        string  `json:"period" validate:"max=50"`
	Status        string  `json:"status" validate:"omitempty,oneof=on_track at_risk behind completed"`
}

func (r KPIRequest) ToModel() model.KPI {
	return model.KPI{
		HODID:         r.HODID,
		KPIName:       r.KPIName,
		TargetValue:   r.TargetValue,
		AchievedValue: r.AchievedValue,
		Unit:          r.Unit,
		Period:        r.Period,
		Status:        orDefault(r.Status, model.KPIOnTrack),
	}
}

type NodalOfficerRequest struct {
	Name        string `json:"name" validate:"required,max=255" conform:"trim"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	SchemeID    *uint  `json:"scheme_id"`
	HODID       *uint  `json:"hod_id"`
	Email       string `json:"email" validate:"omitempty,email" conform:"email"`
	Phone       string `json:"phone" validate:"max=20"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r NodalOfficerRequest) ToModel() model.NodalOfficer {
	return model.NodalOfficer{
		Name:        r.Name,
		Designation: r.Designation,
		Department:  r.Department,
		SchemeID:    r.SchemeID,
		HODID:       r.HODID,
		Email:       r.Email,
		Phone:       r.Phone,
		Status:      orDefault(r.Status, model.StatusActive),
	}
}
