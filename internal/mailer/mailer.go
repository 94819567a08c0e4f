// Package mailer sends the account emails over SMTP.
package mailer

import (
	"crypto/tls"
	"log"
	"strings"

	"hod-management-backend/config"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// Mailer is what the auth use cases need from email delivery.
type Mailer interface {
	SendRegistration(to, name, username, password string) error
	SendPasswordChanged(to, name string) error
}

type SMTPMailer struct {
	from        string
	frontendURL string
	enabled     bool
	send        func(*gomail.Message) error
}

func New(cfg *config.Config) *SMTPMailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPMailer{
		from:        from,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		enabled:     cfg.SMTPHost != "" && cfg.SMTPUser != "" && cfg.SMTPPassword != "",
		send:        func(m *gomail.Message) error { return d.DialAndSend(m) },
	}
}

func (m *SMTPMailer) SendRegistration(to, name, username, password string) error {
	body, err := render(registrationTmpl, registrationData{
		Name:        name,
		Username:    username,
		Password:    password,
		FrontendURL: m.frontendURL,
	})
	if err != nil {
		return errors.Wrap(err, "render registration email")
	}
	return m.deliver(to, "Welcome to HOD Management System - Registration Successful", body)
}

func (m *SMTPMailer) SendPasswordChanged(to, name string) error {
	body, err := render(passwordChangedTmpl, passwordChangedData{Name: name})
	if err != nil {
		return errors.Wrap(err, "render password changed email")
	}
	return m.deliver(to, "Password Changed Successfully - HOD Management System", body)
}

// deliver is a no-op when SMTP credentials are not configured.
func (m *SMTPMailer) deliver(to, subject, html string) error {
	if !m.enabled {
		log.Printf("SMTP not configured, skipping email %q to %s", subject, to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.send(msg); err != nil {
		return errors.Wrapf(err, "send email to %s", to)
	}
	return nil
}
