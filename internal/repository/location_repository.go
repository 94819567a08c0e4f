package repository

import (
	"hod-management-backend/internal/model"

	"gorm.io/gorm"
)

// VillageScope selects which budget location column a village lookup filters on.
type VillageScope string

const (
	VillagesByMandal   VillageScope = "mandal_id"
	VillagesByDistrict VillageScope = "district_id"
	VillagesByState    VillageScope = "state_id"
)

type LocationRepository interface {
	GetStates() ([]model.State, error)
	GetDistricts(stateID uint) ([]model.District, error)
	GetMandals(districtID uint) ([]model.Mandal, error)
	GetVillages(scope VillageScope, id uint) ([]model.Village, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db}
}

func (r *locationRepository) GetStates() ([]model.State, error) {
	states := []model.State{}
	err := r.db.Where("status = ?", 1).Order("name").Find(&states).Error
	return states, err
}

func (r *locationRepository) GetDistricts(stateID uint) ([]model.District, error) {
	districts := []model.District{}
	err := r.db.Where("state_id = ? AND status = ?", stateID, 1).Order("name").Find(&districts).Error
	return districts, err
}

func (r *locationRepository) GetMandals(districtID uint) ([]model.Mandal, error) {
	mandals := []model.Mandal{}
	err := r.db.Where("district_id = ? AND status = ?", districtID, 1).Order("name").Find(&mandals).Error
	return mandals, err
}

// GetVillages lists the distinct villages recorded on budget rows under a location.
// Villages are only as complete as the budget data entered so far.
func (r *locationRepository) GetVillages(scope VillageScope, id uint) ([]model.Village, error) {
	villages := []model.Village{}
	err := r.db.Table("budget").
		Distinct("village").
		Where(string(scope)+" = ?", id).
		Where("village IS NOT NULL AND village <> ''").
		Order("village").
		Scan(&villages).Error
	return villages, err
}
