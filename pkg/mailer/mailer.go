package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"ai-task-manager/internal/model"
)

// Mailer sends task-related emails.
type Mailer interface {
	SendTaskReminder(ctx context.Context, to string, task model.Task) error
}

// Config holds SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	cfg Config
}

// New creates an SMTP-backed mailer.
func New(cfg Config) (Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailer: SMTP host is required")
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &smtpMailer{cfg: cfg}, nil
}

func (m *smtpMailer) SendTaskReminder(_ context.Context, to string, task model.Task) error {
	subject := fmt.Sprintf("Reminder: %s", task.Title)
	body := buildReminderBody(task)

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}

func buildReminderBody(task model.Task) string {
	var b strings.Builder
	b.WriteString("You have a task coming up:\n\n")
	b.WriteString("Title:    " + task.Title + "\n")
	if task.Description != "" {
		b.WriteString("Details:  " + task.Description + "\n")
	}
	b.WriteString("Priority: " + string(task.Priority) + "\n")
	if task.DueDate != nil {
		b.WriteString("Due:      " + task.DueDate.Format(time.RFC1123) + "\n")
	}
	b.WriteString("\nOpen your dashboard to manage this task.\n")
	return b.String()
}
