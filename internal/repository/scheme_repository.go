package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type SchemeRepository interface {
	GetAll() ([]model.SchemeListItem, error)
	GetDetails(id uint) (*model.SchemeDetails, error)
	GetByHOD(hodID uint) ([]model.SchemeListItem, error)
	Create(scheme *model.Scheme) error
	Update(scheme *model.Scheme) error
	Delete(id uint) error

	GetAllAllocations() ([]model.AllocationListItem, error)
	GetAllocations(schemeID uint) ([]model.SchemeBudgetAllocation, error)
	CreateAllocation(allocation *model.SchemeBudgetAllocation) error
	UpdateAllocation(allocation *model.SchemeBudgetAllocation) error
	DeleteAllocation(id uint) error
}

type schemeRepository struct {
	db *gorm.DB
}

func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{db}
}

const schemeAllocationTotals = "COALESCE(SUM(sba.allocated_amount), 0) AS budget_allocated, " +
	"COALESCE(SUM(sba.spent_amount), 0) AS budget_utilized"

func (r *schemeRepository) GetAll() ([]model.SchemeListItem, error) {
	schemes := []model.SchemeListItem{}
	err := r.db.Table("schemes s").
		Select("s.*, h.name AS hod_name, h.department, c.name AS category_name, " + schemeAllocationTotals).
		Joins("LEFT JOIN hods h ON s.hod_id = h.id").
		Joins("LEFT JOIN categories c ON s.category_id = c.id").
		Joins("LEFT JOIN scheme_budget_allocation sba ON s.id = sba.scheme_id").
		Group("s.id").
		Order("s.name").
		Scan(&schemes).Error
	return schemes, err
}

func (r *schemeRepository) GetDetails(id uint) (*model.SchemeDetails, error) {
	var details model.SchemeDetails
	res := r.db.Table("schemes s").
		Select("s.*, h.name AS hod_name, h.department").
		Joins("LEFT JOIN hods h ON s.hod_id = h.id").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&details)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	allocations, err := r.GetAllocations(id)
	if err != nil {
		return nil, err
	}
	details.BudgetAllocations = allocations
	return &details, nil
}

func (r *schemeRepository) GetByHOD(hodID uint) ([]model.SchemeListItem, error) {
	schemes := []model.SchemeListItem{}
	err := r.db.Table("schemes s").
		Select("s.*, " + schemeAllocationTotals).
		Joins("LEFT JOIN scheme_budget_allocation sba ON s.id = sba.scheme_id").
		Where("s.hod_id = ?", hodID).
		Group("s.id").
		Order("s.name").
		Scan(&schemes).Error
	return schemes, err
}

func (r *schemeRepository) Create(scheme *model.Scheme) error {
	return r.db.Create(scheme).Error
}

func (r *schemeRepository) Update(scheme *model.Scheme) error {
	return r.db.Model(&model.Scheme{ID: scheme.ID}).
		Select("name", "hod_id", "category_id", "scheme_description", "scheme_objective",
			"scheme_benefits_desc", "scheme_benefits_person", "total_budget",
			"start_date", "end_date", "status", "scheme_category").
		Updates(scheme).Error
}

func (r *schemeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Scheme{}, id).Error
}

func (r *schemeRepository) GetAllAllocations() ([]model.AllocationListItem, error) {
	allocations := []model.AllocationListItem{}
	err := r.db.Table("scheme_budget_allocation sba").
		Select("sba.*, s.name AS scheme_name, s.scheme_category").
		Joins("LEFT JOIN schemes s ON sba.scheme_id = s.id").
		Order("sba.created_at DESC").
		Scan(&allocations).Error
	return allocations, err
}

func (r *schemeRepository) GetAllocations(schemeID uint) ([]model.SchemeBudgetAllocation, error) {
	allocations := []model.SchemeBudgetAllocation{}
	err := r.db.Where("scheme_id = ?", schemeID).Order("financial_year").Find(&allocations).Error
	return allocations, err
}

func (r *schemeRepository) CreateAllocation(allocation *model.SchemeBudgetAllocation) error {
	return r.db.Create(allocation).Error
}

func (r *schemeRepository) UpdateAllocation(allocation *model.SchemeBudgetAllocation) error {
	return r.db.Model(&model.SchemeBudgetAllocation{ID: allocation.ID}).
		Select("hod_id", "hod_name", "allocated_amount", "spent_amount", "financial_year").
		Updates(allocation).Error
}

func (r *schemeRepository) DeleteAllocation(id uint) error {
	return r.db.Delete(&model.SchemeBudgetAllocation{}, id).Error
}
