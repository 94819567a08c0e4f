package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type RevenueRepository interface {
	GetAll() ([]model.RevenueListItem, error)
	GetByHOD(hodID uint) ([]model.RevenueListItem, error)
	SummaryByHOD() ([]model.RevenueHODSummary, error)
	Create(revenue *model.Revenue) error
	Update(revenue *model.Revenue) error
	Delete(id uint) error
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db}
}

func (r *revenueRepository) GetAll() ([]model.RevenueListItem, error) {
	rows := []model.RevenueListItem{}
	err := r.db.Table("revenue r").
		Select("r.*, h.name AS hod_name, s.name AS scheme_name").
		Joins("LEFT JOIN hods h ON r.hod_id = h.id").
		Joins("LEFT JOIN schemes s ON r.scheme_id = s.id").
		Order("r.date DESC").Order("r.id").
		Scan(&rows).Error
	return rows, err
}

func (r *revenueRepository) GetByHOD(hodID uint) ([]model.RevenueListItem, error) {
	rows := []model.RevenueListItem{}
	err := r.db.Table("revenue r").
		Select("r.*, s.name AS scheme_name").
		Joins("LEFT JOIN schemes s ON r.scheme_id = s.id").
		Where("r.hod_id = ?", hodID).
		Order("r.date DESC").Order("r.id").
		Scan(&rows).Error
	return rows, err
}

func (r *revenueRepository) SummaryByHOD() ([]model.RevenueHODSummary, error) {
	rows := []model.RevenueHODSummary{}
	err := r.db.Table("hods h").
		Select("h.id AS hod_id, h.name AS hod_name, h.department, " +
			"COALESCE(SUM(r.amount), 0) AS total_revenue, COUNT(r.id) AS transaction_count").
		Joins("LEFT JOIN revenue r ON h.id = r.hod_id").
		Group("h.id, h.name, h.department").
		Order("h.name").Order("h.id").
		Scan(&rows).Error
	return rows, err
}

func (r *revenueRepository) Create(revenue *model.Revenue) error {
	return r.db.Create(revenue).Error
}

func (r *revenueRepository) Update(revenue *model.Revenue) error {
	return r.db.Model(&model.Revenue{ID: revenue.ID}).
		Select("hod_id", "scheme_id", "amount", "source", "category", "date", "description").
		Updates(revenue).Error
}

func (r *revenueRepository) Delete(id uint) error {
	return r.db.Delete(&model.Revenue{}, id).Error
}
