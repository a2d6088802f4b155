package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

func (s *EmailSender) SendStageChanged(to, leadName, stageLabel string) error {
	data := StageChangedEmailData{
		LeadName:   leadName,
		StageLabel: stageLabel,
	}

	tmplPath := filepath.Join("templates", "stage_changed.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("reading email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@edhorizon.app")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead update: %s moved to %s", leadName, stageLabel))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP email: %w", err)
	}

	return nil
}
