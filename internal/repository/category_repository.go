package repository

import (
	"errors"

	"hod-management-backend/internal/model"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDuplicateName is returned when a unique name is already taken.
var ErrDuplicateName = errors.New("duplicate name")

const mysqlDuplicateEntry = 1062

type CategoryRepository interface {
	GetActive() ([]model.Category, error)
	FindByID(id uint) (*model.Category, error)
	Create(category *model.Category) error
	Update(category *model.Category) error
	Deactivate(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db}
}

func (r *categoryRepository) GetActive() ([]model.Category, error) {
	categories := []model.Category{}
	err := r.db.Where("status = ?", model.StatusActive).Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) Create(category *model.Category) error {
	return translateDuplicate(r.db.Create(category).Error)
}

func (r *categoryRepository) Update(category *model.Category) error {
	err := r.db.Model(&model.Category{ID: category.ID}).
		Select("name", "description", "status").
		Updates(category).Error
	return translateDuplicate(err)
}

// Deactivate soft-deletes the category; rows referencing it keep the link.
func (r *categoryRepository) Deactivate(id uint) error {
	return r.db.Model(&model.Category{}).Where("id = ?", id).Update("status", model.StatusInactive).Error
}

func translateDuplicate(err error) error {
	var myErr *mysqlerr.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return ErrDuplicateName
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}
