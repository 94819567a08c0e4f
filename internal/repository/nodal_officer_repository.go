package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type NodalOfficerRepository interface {
	GetAll() ([]model.NodalOfficerListItem, error)
	FindByID(id uint) (*model.NodalOfficerListItem, error)
	Create(officer *model.NodalOfficer) error
	Update(officer *model.NodalOfficer) error
	Delete(id uint) error
}

type nodalOfficerRepository struct {
	db *gorm.DB
}

func NewNodalOfficerRepository(db *gorm.DB) NodalOfficerRepository {
	return &nodalOfficerRepository{db}
}

func (r *nodalOfficerRepository) list() *gorm.DB {
	return r.db.Table("nodal_officers n").
		Select("n.*, s.name AS scheme_name").
		Joins("LEFT JOIN schemes s ON n.scheme_id = s.id")
}

func (r *nodalOfficerRepository) GetAll() ([]model.NodalOfficerListItem, error) {
	rows := []model.NodalOfficerListItem{}
	err := r.list().Order("n.name").Order("n.id").Scan(&rows).Error
	return rows, err
}

func (r *nodalOfficerRepository) FindByID(id uint) (*model.NodalOfficerListItem, error) {
	var row model.NodalOfficerListItem
	res := r.list().Where("n.id = ?", id).Limit(1).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *nodalOfficerRepository) Create(officer *model.NodalOfficer) error {
	return r.db.Create(officer).Error
}

func (r *nodalOfficerRepository) Update(officer *model.NodalOfficer) error {
	return r.db.Model(&model.NodalOfficer{ID: officer.ID}).
		Select("name", "designation", "department", "scheme_id", "hod_id", "email", "phone", "status").
		Updates(officer).Error
}

func (r *nodalOfficerRepository) Delete(id uint) error {
	return r.db.Delete(&model.NodalOfficer{}, id).Error
}
