package usecase

import (
	"log"
	"strings"
	"time"

	"hod-management-backend/config"
	"hod-management-backend/internal/mailer"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"

	goval "github.com/go-passwd/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

var passwordPolicy = goval.New(goval.MinLength(minPasswordLength, ErrPasswordTooShort))

// Claims is the session carried by the bearer token.
type Claims struct {
	UserID  uint   `json:"user_id"`
	Role    string `json:"role"`
	HODID   *uint  `json:"hod_id,omitempty"`
	StaffID *uint  `json:"staff_id,omitempty"`
	jwt.RegisteredClaims
}

// IsHOD reports whether the session is scoped to a single HOD.
func (c *Claims) IsHOD() bool {
	return c != nil && c.Role == model.RoleHOD && c.HODID != nil
}

type LoginResult struct {
	Success                bool               `json:"success"`
	User                   *model.UserProfile `json:"user"`
	Token                  string             `json:"token"`
	RequiresPasswordChange bool               `json:"requiresPasswordChange"`
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	Name       string
	Role       string
	HODID      *uint
	StaffID    *uint
	CategoryID *uint
}

type UserUsecase struct {
	repo   repository.UserRepository
	mail   mailer.Mailer
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewUserUsecase(repo repository.UserRepository, mail mailer.Mailer, cfg *config.Config) *UserUsecase {
	return &UserUsecase{
		repo:   repo,
		mail:   mail,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

func (u *UserUsecase) Login(login, password string) (*LoginResult, error) {
	user, err := u.repo.FindActiveByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.repo.TouchLastLogin(user.ID, u.now()); err != nil {
		return nil, errors.Wrap(err, "update last login")
	}

	profile, err := u.repo.GetProfile(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load profile")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Success:                true,
		User:                   profile,
		Token:                  token,
		RequiresPasswordChange: !user.PasswordChanged,
	}, nil
}

func (u *UserUsecase) issueToken(user *model.User) (string, error) {
	now := u.now()
	claims := Claims{
		UserID:  user.ID,
		Role:    user.Role,
		HODID:   user.HODID,
		StaffID: user.StaffID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns its session.
func (u *UserUsecase) ParseToken(raw string) (*Claims, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	}, jwt.WithTimeFunc(u.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (u *UserUsecase) Me(userID uint) (*model.UserProfile, error) {
	profile, err := u.repo.GetProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "load profile")
	}
	return profile, nil
}

func (u *UserUsecase) ChangePassword(userID uint, current, next string) error {
	if err := passwordPolicy.Validate(next); err != nil {
		return err
	}

	user, err := u.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return errors.Wrap(err, "find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	if err := u.repo.UpdatePassword(user.ID, string(hash)); err != nil {
		return errors.Wrap(err, "update password")
	}

	if err := u.mail.SendPasswordChanged(user.Email, user.Name); err != nil {
		log.Printf("Error sending password changed email: %v", err)
	}
	return nil
}

// Register creates the account and, for HOD and staff roles, the row it is linked to.
// Storage errors are returned unwrapped so the caller can show them as-is.
func (u *UserUsecase) Register(in RegisterInput) (*model.User, error) {
	switch in.Role {
	case model.RoleAdmin, model.RoleHOD, model.RoleStaff:
	default:
		return nil, ErrInvalidRole
	}
	if in.Role == model.RoleHOD && in.CategoryID == nil {
		return nil, ErrCategoryRequired
	}
	if in.Role == model.RoleStaff && in.HODID == nil {
		return nil, ErrHODRequired
	}

	exists, err := u.repo.ExistsByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	reg := &repository.Registration{
		User: model.User{
			Username: in.Username,
			Email:    in.Email,
			Password: string(hash),
			Name:     in.Name,
			Role:     in.Role,
			HODID:    in.HODID,
			StaffID:  in.StaffID,
		},
		CategoryID: in.CategoryID,
		HODID:      in.HODID,
		Today:      u.now(),
	}
	if err := u.repo.Register(reg); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := u.mail.SendRegistration(in.Email, in.Name, in.Username, in.Password); err != nil {
		log.Printf("Error sending registration email: %v", err)
	}
	return &reg.User, nil
}

func (u *UserUsecase) ListActive() ([]model.UserListItem, error) {
	users, err := u.repo.GetActive()
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}
