package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type KPIRepository interface {
	GetAll() ([]model.KPIListItem, error)
	FindByID(id uint) (*model.KPIListItem, error)
	GetByHOD(hodID uint) ([]model.KPI, error)
	Create(kpi *model.KPI) error
	Update(kpi *model.KPI) error
	Delete(id uint) error
}

type kpiRepository struct {
	db *gorm.DB
}

func NewKPIRepository(db *gorm.DB) KPIRepository {
	return &kpiRepository{db}
}

func (r *kpiRepository) list() *gorm.DB {
	return r.db.Table("kpis k").
		Select("k.*, h.name AS hod_name, h.department").
		Joins("LEFT JOIN hods h ON k.hod_id = h.id")
}

func (r *kpiRepository) GetAll() ([]model.KPIListItem, error) {
	rows := []model.KPIListItem{}
	err := r.list().Order("k.kpi_name").Order("k.id").Scan(&rows).Error
	return rows, err
}

func (r *kpiRepository) FindByID(id uint) (*model.KPIListItem, error) {
	var row model.KPIListItem
	res := r.list().Where("k.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *kpiRepository) GetByHOD(hodID uint) ([]model.KPI, error) {
	rows := []model.KPI{}
	err := r.db.Where("hod_id = ?", hodID).Order("kpi_name").Find(&rows).Error
	return rows, err
}

func (r *kpiRepository) Create(kpi *model.KPI) error {
	return r.db.Create(kpi).Error
}

func (r *kpiRepository) Update(kpi *model.KPI) error {
	return r.db.Model(&model.KPI{ID: kpi.ID}).
		Select("hod_id", "kpi_name", "target_value", "achieved_value", "unit", "period", "status").
		Updates(kpi).Error
}

func (r *kpiRepository) Delete(id uint) error {
	return r.db.Delete(&model.KPI{}, id).Error
}
