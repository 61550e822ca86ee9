// Package mail sends guest emails over SMTP
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/pkg/config"
)

var (
	// ErrNoRecipient is returned for guests without an email address
	ErrNoRecipient = errors.New("guest has no email address")
	// ErrInvalidRecipient is returned for addresses that would break the message headers
	ErrInvalidRecipient = errors.New("guest email address contains a line break")
)

var headerReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// Message is a rendered email
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

type sendFunc func(ctx context.Context, msg *Message) error

// SMTPMailer renders guest emails and sends them over SMTP.
// Without a configured host messages are only logged.
type SMTPMailer struct {
	cfg       config.MailConfig
	logger    *zap.Logger
	templates map[string]*template.Template
	send      sendFunc
}

type templateData struct {
	GuestName   string
	EventName   string
	Location    string
	StartsAt    string
	PlusOneName string
	RSVPURL     string
}

// NewSMTPMailer creates a new mailer
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) *SMTPMailer {
	m := &SMTPMailer{
		cfg:       cfg,
		logger:    logger,
		templates: loadTemplates(),
	}
	if cfg.Host == "" {
		m.send = m.logOnly
	} else {
		m.send = m.sendSMTP
	}
	return m
}

// SendInvitation sends the event invitation to a guest
func (m *SMTPMailer) SendInvitation(ctx context.Context, event *entities.Event, guest *entities.Guest) error {
	return m.deliver(ctx, "invitation", fmt.Sprintf("Invitation : %s", event.Name), event, guest)
}

// SendReminder sends an RSVP reminder to a guest that was already invited
func (m *SMTPMailer) SendReminder(ctx context.Context, event *entities.Event, guest *entities.Guest) error {
	return m.deliver(ctx, "reminder", fmt.Sprintf("Rappel : %s", event.Name), event, guest)
}

func (m *SMTPMailer) deliver(ctx context.Context, name, subject string, event *entities.Event, guest *entities.Guest) error {
	if !guest.HasEmail() {
		// retrying cannot fix a missing address
		return backoff.Permanent(ErrNoRecipient)
	}

	to := strings.TrimSpace(*guest.Email)
	if strings.ContainsAny(to, "\r\n") {
		return backoff.Permanent(ErrInvalidRecipient)
	}

	body, err := m.render(name, event, guest)
	if err != nil {
		return backoff.Permanent(err)
	}

	return m.send(ctx, &Message{
		To:       to,
		Subject:  subject,
		HTMLBody: body,
	})
}

func (m *SMTPMailer) render(name string, event *entities.Event, guest *entities.Guest) (string, error) {
	tmpl, ok := m.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	data := templateData{
		GuestName: guest.Name,
		EventName: event.Name,
		RSVPURL:   fmt.Sprintf("%s/%s", strings.TrimRight(m.cfg.RSVPURL, "/"), guest.ID),
	}
	if event.Location != nil {
		data.Location = *event.Location
	}
	if event.StartsAt != nil {
		data.StartsAt = event.StartsAt.Format("02/01/2006 15:04")
	}
	if guest.PlusOne && guest.PlusOneName != nil {
		data.PlusOneName = *guest.PlusOneName
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (m *SMTPMailer) logOnly(_ context.Context, msg *Message) error {
	m.logger.Info("mail.skipped",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("reason", "smtp host not configured"),
	)
	return nil
}

// buildMessage writes the MIME headers followed by the HTML body.
// Line breaks in header values are folded into spaces.
func (m *SMTPMailer) buildMessage(msg *Message) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s <%s>\r\n", headerReplacer.Replace(m.cfg.FromName), headerReplacer.Replace(m.cfg.From)))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", headerReplacer.Replace(msg.To)))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", headerReplacer.Replace(msg.Subject)))
	buf.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTMLBody)
	return buf.Bytes()
}

func (m *SMTPMailer) sendSMTP(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return backoff.Permanent(err)
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	body := m.buildMessage(msg)

	if !m.cfg.UseTLS {
		if err := smtp.SendMail(addr, auth, m.cfg.From, []string{msg.To}, body); err != nil {
			return fmt.Errorf("failed to send mail: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("TLS dial error: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("SMTP client error: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("auth error: %w", err)
		}
	}
	if err := client.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("mail error: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("rcpt error: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data error: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close error: %w", err)
	}

	return client.Quit()
}
