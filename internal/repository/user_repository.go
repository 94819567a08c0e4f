package repository

import (
	"errors"
	"strings"
	"time"

	"hod-management-backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidHOD      = errors.New("invalid HOD")
)

// Registration is a new account plus the HOD or staff row it owns.
// User.Password must already be hashed.
type Registration struct {
	User       model.User
	CategoryID *uint
	HODID      *uint
	Today      time.Time
}

type UserRepository interface {
	FindActiveByLogin(login string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	GetProfile(id uint) (*model.UserProfile, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	TouchLastLogin(id uint, at time.Time) error
	UpdatePassword(id uint, hash string) error
	Register(reg *Registration) error
	GetActive() ([]model.UserListItem, error)
	ActiveIDs(role string) ([]uint, error)
	FirstAdminID() (*uint, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindActiveByLogin matches an active user by email, or by username or email
// when the login has no '@'. Matching is case-insensitive.
func (r *userRepository) FindActiveByLogin(login string) (*model.User, error) {
	login = strings.ToLower(strings.TrimSpace(login))
	query := r.db.Where("status = ?", model.StatusActive)
	if strings.Contains(login, "@") {
		query = query.Where("LOWER(email) = ?", login)
	} else {
		query = query.Where("LOWER(username) = ? OR LOWER(email) = ?", login, login)
	}
	var user model.User
	err := query.First(&user).Error
	return &user, err
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetProfile(id uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	res := r.db.Table("users u").
		Select("u.id, u.username, u.email, u.role, " +
			"COALESCE(NULLIF(u.name, ''), h.name, s.name, '') AS name, " +
			"u.hod_id, u.staff_id, h.department, u.password_changed").
		Joins("LEFT JOIN hods h ON u.hod_id = h.id").
		Joins("LEFT JOIN staff s ON u.staff_id = s.id").
		Where("u.id = ?", id).
		Limit(1).
		Scan(&profile)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *userRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{"password": hash, "password_changed": true}).Error
}

// Register inserts the HOD or staff row and then the user in one transaction.
// Any failure rolls everything back, so no HOD or staff row is left without its user.
func (r *userRepository) Register(reg *Registration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		user := &reg.User

		switch user.Role {
		case model.RoleHOD:
			if reg.CategoryID == nil {
				return ErrInvalidCategory
			}
			var category model.Category
			if err := tx.First(&category, *reg.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidCategory
				}
				return err
			}
			hod := model.HOD{
				Name:       user.Name,
				Department: category.Name,
				CategoryID: &category.ID,
				Email:      user.Email,
				Status:     model.StatusActive,
			}
			if err := tx.Create(&hod).Error; err != nil {
				return err
			}
			user.HODID = &hod.ID

		case model.RoleStaff:
			if reg.HODID == nil {
				return ErrInvalidHOD
			}
			var hod model.HOD
			if err := tx.First(&hod, *reg.HODID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidHOD
				}
				return err
			}
			joined := datatypes.Date(reg.Today)
			staff := model.Staff{
				Name:        user.Name,
				EmployeeID:  user.Username,
				Designation: "Staff",
				Department:  hod.Department,
				CategoryID:  hod.CategoryID,
				HODID:       &hod.ID,
				Email:       user.Email,
				JoiningDate: &joined,
				Status:      model.StatusActive,
			}
			if err := tx.Create(&staff).Error; err != nil {
				return err
			}
			user.HODID = &hod.ID
			user.StaffID = &staff.ID
		}

		user.Status = model.StatusActive
		user.PasswordChanged = false
		return tx.Create(user).Error
	})
}

func (r *userRepository) GetActive() ([]model.UserListItem, error) {
	users := []model.UserListItem{}
	err := r.db.Table("users u").
		Select("u.id, u.username, u.email, u.role, u.name, u.status, h.name AS hod_name, s.name AS staff_name").
		Joins("LEFT JOIN hods h ON u.hod_id = h.id").
		Joins("LEFT JOIN staff s ON u.staff_id = s.id").
		Where("u.status = ?", model.StatusActive).
		Order("u.name").Order("u.id").
		Scan(&users).Error
	return users, err
}

// ActiveIDs lists active user ids, all of them when role is empty.
func (r *userRepository) ActiveIDs(role string) ([]uint, error) {
	ids := []uint{}
	query := r.db.Model(&model.User{}).Where("status = ?", model.StatusActive)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	err := query.Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *userRepository) FirstAdminID() (*uint, error) {
	ids := []uint{}
	err := r.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Order("id").Limit(1).Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return &ids[0], nil
}
