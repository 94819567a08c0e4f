package usecase

import (
	"time"

	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users      map[uint]*model.User
	exists     bool
	registerFn func(reg *repository.Registration) error
	registered *repository.Registration
	activeIDs  map[string][]uint
	adminID    *uint
	touched    []uint
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uint]*model.User{}, activeIDs: map[string][]uint{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindActiveByLogin(login string) (*model.User, error) {
	for _, u := range r.users {
		if u.Status == model.StatusActive && (u.Username == login || u.Email == login) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetProfile(id uint) (*model.UserProfile, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &model.UserProfile{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
		Name:            u.Name,
		HODID:           u.HODID,
		PasswordChanged: u.PasswordChanged,
	}, nil
}

func (r *fakeUserRepo) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	return r.exists, nil
}

func (r *fakeUserRepo) TouchLastLogin(id uint, at time.Time) error {
	r.touched = append(r.touched, id)
	return nil
}

func (r *fakeUserRepo) UpdatePassword(id uint, hash string) error {
	r.users[id].Password = hash
	r.users[id].PasswordChanged = true
	return nil
}

func (r *fakeUserRepo) Register(reg *repository.Registration) error {
	r.registered = reg
	if r.registerFn != nil {
		return r.registerFn(reg)
	}
	reg.User.ID = 99
	return nil
}

func (r *fakeUserRepo) GetActive() ([]model.UserListItem, error) {
	return []model.UserListItem{}, nil
}

func (r *fakeUserRepo) ActiveIDs(role string) ([]uint, error) {
	return r.activeIDs[role], nil
}

func (r *fakeUserRepo) FirstAdminID() (*uint, error) {
	return r.adminID, nil
}

type sentMail struct {
	kind, to, name, password string
}

type fakeMailer struct {
	sent []sentMail
}

func (m *fakeMailer) SendRegistration(to, name, username, password string) error {
	m.sent = append(m.sent, sentMail{kind: "registration", to: to, name: name, password: password})
	return nil
}

func (m *fakeMailer) SendPasswordChanged(to, name string) error {
	m.sent = append(m.sent, sentMail{kind: "password_changed", to: to, name: name})
	return nil
}
