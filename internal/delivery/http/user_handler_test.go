package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hod-management-backend/config"
	"hod-management-backend/internal/dbtest"
	"hod-management-backend/internal/repository"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type nopMailer struct{ sent int }

func (m *nopMailer) SendRegistration(to, name, username, password string) error {
	m.sent++
	return nil
}

func (m *nopMailer) SendPasswordChanged(to, name string) error {
	m.sent++
	return nil
}

func newTestApp(db *gorm.DB) (*fiber.App, *nopMailer) {
	mail := &nopMailer{}
	uc := usecase.NewUserUsecase(repository.NewUserRepository(db), mail,
		&config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	h := NewUserHandler(uc)

	app := fiber.New()
	auth := app.Group("/api/auth")
	auth.Post("/login", h.Login)
	auth.Get("/verify", h.Verify)
	auth.Get("/me", h.Me)
	auth.Post("/register-user", h.RegisterUser)
	return app, mail
}

func do(t *testing.T, app *fiber.App, method, path, body string, header map[string]string) (int, map[string]interface{}) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	out := map[string]interface{}{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestLoginAndVerify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	db, script := dbtest.New(t,
		dbtest.Query("FROM `users` WHERE status = \\? AND \\(LOWER\\(username\\) = \\? OR LOWER\\(email\\) = \\?\\)").
			Returns([]string{"id", "username", "email", "password", "role", "status", "password_changed"},
				dbtest.Row(int64(3), "rao", "rao@example.org", string(hash), "admin", "active", false)),
		dbtest.Exec("UPDATE `users` SET `last_login`=\\?").Affects(1),
		dbtest.Query("FROM users u").
			Returns([]string{"id", "username", "email", "role", "name", "password_changed"},
				dbtest.Row(int64(3), "rao", "rao@example.org", "admin", "K. Rao", false)),
	)
	app, _ := newTestApp(db)

	status, body := do(t, app, "POST", "/api/auth/login", `{"username":" Rao ","password":"secret1"}`, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["requiresPasswordChange"] != true || body["success"] != true {
		t.Fatalf("body = %v", body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("no token")
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}

	status, body = do(t, app, "GET", "/api/auth/verify", "", map[string]string{"Authorization": "Bearer " + token})
	if status != fiber.StatusOK || body["valid"] != true {
		t.Fatalf("verify: %d %v", status, body)
	}

	status, _ = do(t, app, "GET", "/api/auth/verify", "", map[string]string{"Authorization": "Bearer demo-token-1"})
	if status != fiber.StatusUnauthorized {
		t.Fatalf("forged token status = %d", status)
	}
	status, _ = do(t, app, "GET", "/api/auth/verify", "", nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("missing token status = %d", status)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	db, _ := dbtest.New(t,
		dbtest.Query("FROM `users`").Returns([]string{"id"}),
	)
	app, _ := newTestApp(db)

	status, body := do(t, app, "POST", "/api/auth/login", `{"username":"ghost","password":"x"}`, nil)
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["error"] != "Invalid username/email or password" {
		t.Fatalf("error = %v", body["error"])
	}

	status, _ = do(t, app, "POST", "/api/auth/login", `{"username":"ghost"}`, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("missing password status = %d", status)
	}
}

func TestMeRequiresUser(t *testing.T) {
	db, _ := dbtest.New(t)
	app, _ := newTestApp(db)

	status, body := do(t, app, "GET", "/api/auth/me", "", nil)
	if status != fiber.StatusBadRequest || body["error"] != "User ID required" {
		t.Fatalf("me: %d %v", status, body)
	}
}

func TestRegisterUserRejectsBeforeStorage(t *testing.T) {
	// No scripted statements: any query fails the test.
	db, _ := dbtest.New(t)
	app, mail := newTestApp(db)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"hod without category", `{"username":"a","email":"a@x.org","password":"p","name":"A","role":"hod"}`, "Category is required for HOD"},
		{"staff without hod", `{"username":"b","email":"b@x.org","password":"p","name":"B","role":"staff"}`, "HOD is required for Staff"},
		{"bad email", `{"username":"c","email":"nope","password":"p","name":"C","role":"admin"}`, "Validation failed"},
		{"bad role", `{"username":"d","email":"d@x.org","password":"p","name":"D","role":"root"}`, "Validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, "POST", "/api/auth/register-user", tt.body, nil)
			if status != fiber.StatusBadRequest || body["error"] != tt.want {
				t.Fatalf("%d %v, want 400 %q", status, body, tt.want)
			}
		})
	}
	if mail.sent != 0 {
		t.Fatal("mail sent for rejected registration")
	}
}

func TestRegisterUserDuplicate(t *testing.T) {
	db, _ := dbtest.New(t,
		dbtest.Query("SELECT count\\(\\*\\) FROM `users`").
			WithArgs("rao", "rao@example.org").
			Returns([]string{"count(*)"}, dbtest.Row(int64(1))),
	)
	app, _ := newTestApp(db)

	status, body := do(t, app, "POST", "/api/auth/register-user",
		`{"username":"rao","email":"rao@example.org","password":"p","name":"Rao","role":"admin"}`, nil)
	if status != fiber.StatusBadRequest || body["error"] != "Username or email already exists" {
		t.Fatalf("%d %v", status, body)
	}
}
