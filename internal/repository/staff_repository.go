package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	GetAll() ([]model.StaffListItem, error)
	FindByID(id uint) (*model.StaffListItem, error)
	GetByHOD(hodID uint) ([]model.Staff, error)
	GetActiveByHOD(hodID *uint) ([]model.Staff, error)
	Create(staff *model.Staff) error
	Update(staff *model.Staff) error
	Delete(id uint) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) GetAll() ([]model.StaffListItem, error) {
	staff := []model.StaffListItem{}
	err := r.db.Table("staff s").
		Select("s.*, h.name AS hod_name").
		Joins("LEFT JOIN hods h ON s.hod_id = h.id").
		Order("s.name").
		Scan(&staff).Error
	return staff, err
}

func (r *staffRepository) FindByID(id uint) (*model.StaffListItem, error) {
	var staff model.StaffListItem
	res := r.db.Table("staff s").
		Select("s.*, h.name AS hod_name").
		Joins("LEFT JOIN hods h ON s.hod_id = h.id").
		Where("s.id = ?", id).
		Limit(1).
		Scan(&staff)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &staff, nil
}

func (r *staffRepository) GetByHOD(hodID uint) ([]model.Staff, error) {
	staff := []model.Staff{}
	err := r.db.Where("hod_id = ?", hodID).Order("name").Find(&staff).Error
	return staff, err
}

// GetActiveByHOD lists active staff, optionally restricted to one HOD.
func (r *staffRepository) GetActiveByHOD(hodID *uint) ([]model.Staff, error) {
	staff := []model.Staff{}
	query := r.db.Where("status = ?", model.StatusActive)
	if hodID != nil {
		query = query.Where("hod_id = ?", *hodID)
	}
	err := query.Order("name").Order("id").Find(&staff).Error
	return staff, err
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) Update(staff *model.Staff) error {
	return r.db.Model(&model.Staff{ID: staff.ID}).
		Select("name", "employee_id", "designation", "department", "category_id", "hod_id",
			"email", "phone", "joining_date", "status").
		Updates(staff).Error
}

func (r *staffRepository) Delete(id uint) error {
	return r.db.Delete(&model.Staff{}, id).Error
}
