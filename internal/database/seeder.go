package database

import (
	"log"

	"hod-management-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminSeed is the first administrator account.
type AdminSeed struct {
	Username string
	Email    string
	Password string
	Name     string
}

var defaultCategories = []model.Category{
	{Name: "Agriculture", Description: "Agriculture and related departments"},
	{Name: "Rural Development", Description: "Rural development and welfare"},
	{Name: "Urban Planning", Description: "Urban planning and infrastructure"},
	{Name: "Health & Welfare", Description: "Health and welfare departments"},
	{Name: "Education", Description: "Education and training departments"},
	{Name: "Employment", Description: "Employment and skill development"},
	{Name: "Infrastructure", Description: "Infrastructure development"},
	{Name: "Sanitation", Description: "Sanitation and cleanliness"},
}

// districtMandals seeds a few Telangana districts and their mandals.
var districtMandals = []struct {
	District string
	Mandals  []string
}{
	{"Hyderabad", []string{"Amberpet", "Secunderabad", "Khairatabad"}},
	{"Warangal", []string{"Hanamkonda", "Kazipet", "Geesugonda"}},
	{"Karimnagar", []string{"Huzurabad", "Choppadandi", "Manakondur"}},
	{"Nizamabad", []string{"Armoor", "Bodhan", "Dichpally"}},
}

// SeedAll inserts reference data and the admin account. Running it again
// changes nothing except re-hashing the admin password.
func SeedAll(db *gorm.DB, admin AdminSeed) error {
	for _, c := range defaultCategories {
		category := c
		category.Status = model.StatusActive
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d categories", len(defaultCategories))

	state := model.State{Name: "Telangana", Code: "TS", Status: 1}
	if err := db.Where(model.State{Name: state.Name}).FirstOrCreate(&state).Error; err != nil {
		return err
	}
	for _, dm := range districtMandals {
		district := model.District{StateID: state.ID, Name: dm.District, Status: 1}
		if err := db.Where(model.District{StateID: state.ID, Name: dm.District}).FirstOrCreate(&district).Error; err != nil {
			return err
		}
		for _, name := range dm.Mandals {
			mandal := model.Mandal{DistrictID: district.ID, Name: name, Status: 1}
			if err := db.Where(model.Mandal{DistrictID: district.ID, Name: name}).FirstOrCreate(&mandal).Error; err != nil {
				return err
			}
		}
	}
	log.Println("Seeded locations")

	return seedAdmin(db, admin)
}

func seedAdmin(db *gorm.DB, admin AdminSeed) error {
	if admin.Username == "" || admin.Password == "" {
		log.Println("Warning: admin seed skipped, no username or password configured")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username:        admin.Username,
		Email:           admin.Email,
		Password:        string(hashedPassword),
		Name:            admin.Name,
		Role:            model.RoleAdmin,
		Status:          model.StatusActive,
		PasswordChanged: true,
	}
	if err := db.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
		return err
	}
	// Keep the configured password authoritative for an existing admin.
	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin %q", user.Username)
	return nil
}
