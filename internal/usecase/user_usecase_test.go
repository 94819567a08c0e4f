package usecase

import (
	"errors"
	"testing"
	"time"

	"hod-management-backend/config"
	"hod-management-backend/internal/model"
	"hod-management-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 6, 30, 10, 0, 0, 0, time.UTC)

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func newTestUsecase(repo *fakeUserRepo, mail *fakeMailer) *UserUsecase {
	u := NewUserUsecase(repo, mail, &config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	u.now = func() time.Time { return testNow }
	return u
}

func hodUser(t *testing.T) *model.User {
	hodID := uint(7)
	return &model.User{
		ID:       3,
		Username: "rao",
		Email:    "rao@example.org",
		Password: hash(t, "secret1"),
		Name:     "K. Rao",
		Role:     model.RoleHOD,
		HODID:    &hodID,
		Status:   model.StatusActive,
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	repo := newFakeUserRepo(hodUser(t))
	u := newTestUsecase(repo, &fakeMailer{})

	res, err := u.Login("rao", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success || !res.RequiresPasswordChange {
		t.Fatalf("result = %+v", res)
	}
	if res.User.Username != "rao" {
		t.Fatalf("user = %+v", res.User)
	}
	if len(repo.touched) != 1 || repo.touched[0] != 3 {
		t.Fatalf("last login not updated: %v", repo.touched)
	}

	claims, err := u.ParseToken("Bearer " + res.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 3 || !claims.IsHOD() || *claims.HODID != 7 {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("token has no jti")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	u := newTestUsecase(newFakeUserRepo(hodUser(t)), &fakeMailer{})

	if _, err := u.Login("rao", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := u.Login("nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user: err = %v", err)
	}
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	u := newTestUsecase(newFakeUserRepo(hodUser(t)), &fakeMailer{})
	res, err := u.Login("rao", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := newTestUsecase(newFakeUserRepo(), &fakeMailer{})
	other.secret = []byte("another-secret")
	if _, err := other.ParseToken(res.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign secret: err = %v", err)
	}

	u.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	if _, err := u.ParseToken(res.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired: err = %v", err)
	}

	if _, err := u.ParseToken(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty: err = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	user := hodUser(t)
	repo := newFakeUserRepo(user)
	mail := &fakeMailer{}
	u := newTestUsecase(repo, mail)

	tests := []struct {
		name    string
		id      uint
		current string
		next    string
		want    error
	}{
		{"too short", 3, "secret1", "abc", ErrPasswordTooShort},
		{"unknown user", 42, "secret1", "newsecret", ErrUserNotFound},
		{"wrong current", 3, "nope", "newsecret", ErrWrongPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := u.ChangePassword(tt.id, tt.current, tt.next); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if len(mail.sent) != 0 {
		t.Fatalf("mail sent on failure: %v", mail.sent)
	}

	if err := u.ChangePassword(3, "secret1", "newsecret"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !user.PasswordChanged {
		t.Fatal("password_changed not set")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newsecret")) != nil {
		t.Fatal("stored hash does not match the new password")
	}
	if len(mail.sent) != 1 || mail.sent[0].kind != "password_changed" {
		t.Fatalf("mail = %v", mail.sent)
	}
}

func TestRegisterValidatesBeforeTouchingStorage(t *testing.T) {
	repo := newFakeUserRepo()
	u := newTestUsecase(repo, &fakeMailer{})

	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"hod without category", RegisterInput{Username: "a", Email: "a@x.org", Password: "p", Name: "A", Role: model.RoleHOD}, ErrCategoryRequired},
		{"staff without hod", RegisterInput{Username: "b", Email: "b@x.org", Password: "p", Name: "B", Role: model.RoleStaff}, ErrHODRequired},
		{"unknown role", RegisterInput{Username: "c", Email: "c@x.org", Password: "p", Name: "C", Role: "guest"}, ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := u.Register(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if repo.registered != nil {
		t.Fatal("Register reached the repository")
	}

	repo.exists = true
	in := RegisterInput{Username: "a", Email: "a@x.org", Password: "p", Name: "A", Role: model.RoleAdmin}
	if _, err := u.Register(in); !errors.Is(err, ErrUserExists) {
		t.Fatalf("duplicate: err = %v", err)
	}
}

func TestRegisterHashesPasswordAndMailsCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	u := newTestUsecase(repo, mail)

	categoryID := uint(2)
	user, err := u.Register(RegisterInput{
		Username:   "lakshmi",
		Email:      "lakshmi@example.org",
		Password:   "Temp#123",
		Name:       "Lakshmi",
		Role:       model.RoleHOD,
		CategoryID: &categoryID,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID != 99 {
		t.Fatalf("id = %d", user.ID)
	}
	if user.Password == "Temp#123" {
		t.Fatal("password stored in plaintext")
	}
	if *repo.registered.CategoryID != 2 || !repo.registered.Today.Equal(testNow) {
		t.Fatalf("registration = %+v", repo.registered)
	}
	if len(mail.sent) != 1 || mail.sent[0].password != "Temp#123" {
		t.Fatalf("mail = %v", mail.sent)
	}
}

func TestRegisterSurfacesStorageErrorVerbatim(t *testing.T) {
	repo := newFakeUserRepo()
	repo.registerFn = func(*repository.Registration) error { return repository.ErrInvalidHOD }
	mail := &fakeMailer{}
	u := newTestUsecase(repo, mail)

	hodID := uint(404)
	_, err := u.Register(RegisterInput{Username: "s", Email: "s@x.org", Password: "p", Name: "S", Role: model.RoleStaff, HODID: &hodID})
	if !errors.Is(err, repository.ErrInvalidHOD) {
		t.Fatalf("err = %v", err)
	}
	if err.Error() != repository.ErrInvalidHOD.Error() {
		t.Fatalf("message = %q", err.Error())
	}
	if len(mail.sent) != 0 {
		t.Fatal("registration email sent after failure")
	}
}
