package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

type HODRepository interface {
	GetAll() ([]model.HODListItem, error)
	FindByID(id uint) (*model.HOD, error)
	GetDetails(id uint) (*model.HODDetails, error)
	Exists(id uint) (bool, error)
	Create(hod *model.HOD) error
	Update(hod *model.HOD) error
	Delete(id uint) error
}

type hodRepository struct {
	db *gorm.DB
}

func NewHODRepository(db *gorm.DB) HODRepository {
	return &hodRepository{db}
}

func (r *hodRepository) GetAll() ([]model.HODListItem, error) {
	hods := []model.HODListItem{}
	err := r.db.Table("hods h").
		Select("h.*, c.name AS category_name").
		Joins("LEFT JOIN categories c ON h.category_id = c.id").
		Order("h.name").
		Scan(&hods).Error
	return hods, err
}

func (r *hodRepository) FindByID(id uint) (*model.HOD, error) {
	var hod model.HOD
	err := r.db.First(&hod, id).Error
	return &hod, err
}

// GetDetails loads the HOD together with everything it owns.
func (r *hodRepository) GetDetails(id uint) (*model.HODDetails, error) {
	hod, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	details := &model.HODDetails{HOD: *hod}
	if err := r.db.Where("hod_id = ?", id).Find(&details.Schemes).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("hod_id = ?", id).Find(&details.Staff).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("hod_id = ?", id).Find(&details.Budget).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("hod_id = ?", id).Find(&details.KPIs).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *hodRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.HOD{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *hodRepository) Create(hod *model.HOD) error {
	return r.db.Create(hod).Error
}

func (r *hodRepository) Update(hod *model.HOD) error {
	return r.db.Model(&model.HOD{ID: hod.ID}).
		Select("name", "department", "category_id", "email", "phone", "status").
		Updates(hod).Error
}

func (r *hodRepository) Delete(id uint) error {
	return r.db.Delete(&model.HOD{}, id).Error
}
