package mailer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"hod-management-backend/config"

	"gopkg.in/gomail.v2"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.example.org",
		SMTPPort:     587,
		SMTPUser:     "noreply@example.org",
		SMTPPassword: "secret",
		FrontendURL:  "https://portal.example.org/",
	}
}

func TestSendRegistrationRendersCredentials(t *testing.T) {
	m := New(testConfig())
	var sent *gomail.Message
	m.send = func(msg *gomail.Message) error {
		sent = msg
		return nil
	}

	if err := m.SendRegistration("kiran@example.org", "Kiran", "kiran", "Temp#123"); err != nil {
		t.Fatalf("SendRegistration: %v", err)
	}
	if sent == nil {
		t.Fatal("no message sent")
	}
	if got := sent.GetHeader("To"); len(got) != 1 || got[0] != "kiran@example.org" {
		t.Fatalf("To = %v", got)
	}
	if got := sent.GetHeader("From"); got[0] != "noreply@example.org" {
		t.Fatalf("From = %v", got)
	}

	var buf bytes.Buffer
	if _, err := sent.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	body := buf.String()
	for _, want := range []string{"Kiran", "Temp#123", "https://portal.example.org/change-password"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestTemplateEscapesNames(t *testing.T) {
	out, err := render(passwordChangedTmpl, passwordChangedData{Name: "<script>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatal("name was not escaped")
	}
}

func TestDisabledMailerSkipsDelivery(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPPassword = ""
	m := New(cfg)
	m.send = func(*gomail.Message) error { return errors.New("must not be called") }

	if err := m.SendPasswordChanged("a@example.org", "A"); err != nil {
		t.Fatalf("SendPasswordChanged: %v", err)
	}
}

func TestSendErrorIsWrapped(t *testing.T) {
	m := New(testConfig())
	m.send = func(*gomail.Message) error { return errors.New("dial tcp: refused") }

	err := m.SendPasswordChanged("a@example.org", "A")
	if err == nil || !strings.Contains(err.Error(), "send email to a@example.org") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewUsesSMTPDialer(t *testing.T) {
	m := New(testConfig())
	if !m.enabled {
		t.Fatal("mailer disabled with full SMTP config")
	}
	if m.send == nil {
		t.Fatal("no sender wired")
	}
	if m.from != "noreply@example.org" || m.frontendURL != "https://portal.example.org" {
		t.Fatalf("from = %q, frontendURL = %q", m.from, m.frontendURL)
	}
}
