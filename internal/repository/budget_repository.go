package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type BudgetRepository interface {
	GetAll() ([]model.BudgetListItem, error)
	FindByID(id uint) (*model.BudgetListItem, error)
	GetByHOD(hodID uint) ([]model.BudgetListItem, error)
	SummaryByYear() ([]model.BudgetYearSummary, error)
	Create(budget *model.Budget) error
	Update(budget *model.Budget) error
	Delete(id uint) error
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db}
}

// withLocations joins the display names shared by every budget listing.
func withLocations(db *gorm.DB) *gorm.DB {
	return db.Joins("LEFT JOIN schemes s ON b.scheme_id = s.id").
		Joins("LEFT JOIN states st ON b.state_id = st.id").
		Joins("LEFT JOIN districts d ON b.district_id = d.id").
		Joins("LEFT JOIN mandals m ON b.mandal_id = m.id")
}

const budgetListColumns = "b.*, h.name AS hod_name, s.name AS scheme_name, " +
	"st.name AS state_name, d.name AS district_name, m.name AS mandal_name"

func (r *budgetRepository) GetAll() ([]model.BudgetListItem, error) {
	rows := []model.BudgetListItem{}
	err := r.db.Table("budget b").
		Select(budgetListColumns).
		Joins("LEFT JOIN hods h ON b.hod_id = h.id").
		Scopes(withLocations).
		Order("b.financial_year DESC").
		Order("b.id").
		Scan(&rows).Error
	return rows, err
}

func (r *budgetRepository) FindByID(id uint) (*model.BudgetListItem, error) {
	var row model.BudgetListItem
	res := r.db.Table("budget b").
		Select(budgetListColumns).
		Joins("LEFT JOIN hods h ON b.hod_id = h.id").
		Scopes(withLocations).
		Where("b.id = ?", id).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *budgetRepository) GetByHOD(hodID uint) ([]model.BudgetListItem, error) {
	rows := []model.BudgetListItem{}
	err := r.db.Table("budget b").
		Select(budgetListColumns).
		Joins("LEFT JOIN hods h ON b.hod_id = h.id").
		Scopes(withLocations).
		Where("b.hod_id = ?", hodID).
		Order("b.financial_year DESC").
		Order("b.id").
		Scan(&rows).Error
	return rows, err
}

func (r *budgetRepository) SummaryByYear() ([]model.BudgetYearSummary, error) {
	rows := []model.BudgetYearSummary{}
	err := r.db.Table("budget").
		Select("financial_year, " +
			"COALESCE(SUM(allocated_amount), 0) AS total_allocated, " +
			"COALESCE(SUM(utilized_amount), 0) AS total_utilized, " +
			"COALESCE(SUM(allocated_amount), 0) - COALESCE(SUM(utilized_amount), 0) AS remaining").
		Group("financial_year").
		Order("financial_year DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *budgetRepository) Create(budget *model.Budget) error {
	return r.db.Create(budget).Error
}

func (r *budgetRepository) Update(budget *model.Budget) error {
	return r.db.Model(&model.Budget{ID: budget.ID}).
		Select("hod_id", "scheme_id", "financial_year", "allocated_amount", "utilized_amount",
			"category", "description", "state_id", "district_id", "mandal_id", "village").
		Updates(budget).Error
}

func (r *budgetRepository) Delete(id uint) error {
	return r.db.Delete(&model.Budget{}, id).Error
}
