package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"hod-management-backend/internal/model"
	"hod-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type stubParser map[string]*usecase.Claims

func (p stubParser) ParseToken(raw string) (*usecase.Claims, error) {
	if c, ok := p[raw]; ok {
		return c, nil
	}
	return nil, errors.New("Invalid or expired token")
}

func hodID(v uint) *uint { return &v }

var parser = stubParser{
	"Bearer admin": {UserID: 1, Role: model.RoleAdmin},
	"Bearer hod7":  {UserID: 3, Role: model.RoleHOD, HODID: hodID(7)},
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	ok := func(c *fiber.Ctx) error {
		if s := Session(c); s != nil {
			return c.JSON(fiber.Map{"user_id": s.UserID})
		}
		return c.JSON(fiber.Map{"user_id": nil})
	}
	app.Get("/private", Auth(parser), ok)
	app.Get("/public", OptionalAuth(parser), ok)
	app.Get("/admin", Auth(parser), Role(model.RoleAdmin), ok)
	app.Get("/hod/:hodId", Auth(parser), HODScope("hodId"), ok)
	app.Get("/dashboard", OptionalAuth(parser), HODScope(""), ok)
	return app
}

func TestMiddlewareStatuses(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"no token", "/private", "", fiber.StatusUnauthorized},
		{"bad token", "/private", "Bearer forged", fiber.StatusUnauthorized},
		{"valid token", "/private", "Bearer admin", fiber.StatusOK},
		{"anonymous public", "/public", "", fiber.StatusOK},
		{"bad token on public", "/public", "Bearer forged", fiber.StatusOK},
		{"admin route as hod", "/admin", "Bearer hod7", fiber.StatusForbidden},
		{"admin route as admin", "/admin", "Bearer admin", fiber.StatusOK},
		{"own hod", "/hod/7", "Bearer hod7", fiber.StatusOK},
		{"other hod", "/hod/8", "Bearer hod7", fiber.StatusForbidden},
		{"admin any hod", "/hod/8", "Bearer admin", fiber.StatusOK},
		{"dashboard other hod", "/dashboard?hod_id=8", "Bearer hod7", fiber.StatusForbidden},
		{"dashboard no hod", "/dashboard", "Bearer hod7", fiber.StatusOK},
		{"dashboard all hods", "/dashboard?hod_id=All", "Bearer hod7", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestRequestIDEchoedOrGenerated(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/public", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("X-Request-ID = %q", got)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/public", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if got := resp.Header.Get("X-Request-ID"); len(got) != 36 {
		t.Fatalf("generated X-Request-ID = %q", got)
	}
}
