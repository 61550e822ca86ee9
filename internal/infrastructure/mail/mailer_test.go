package mail

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/event-planner/internal/domain/entities"
	"github.com/johnquangdev/event-planner/pkg/config"
)

func testConfig() config.MailConfig {
	return config.MailConfig{
		From:     "no-reply@example.com",
		FromName: "Event Planner",
		RSVPURL:  "https://app.example.com/rsvp/",
	}
}

func capture(m *SMTPMailer) *[]*Message {
	var sent []*Message
	m.send = func(_ context.Context, msg *Message) error {
		sent = append(sent, msg)
		return nil
	}
	return &sent
}

func TestSendInvitation(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	sent := capture(m)

	location := "Château de Versailles"
	starts := time.Date(2025, 6, 21, 18, 30, 0, 0, time.UTC)
	email := " alice@example.com "
	plusOne := "Marc"
	event := &entities.Event{ID: uuid.New(), Name: "Mariage", Location: &location, StartsAt: &starts}
	guest := &entities.Guest{ID: uuid.New(), Name: "Alice", Email: &email, PlusOne: true, PlusOneName: &plusOne}

	require.NoError(t, m.SendInvitation(context.Background(), event, guest))
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "Invitation : Mariage", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "Bonjour Alice")
	assert.Contains(t, msg.HTMLBody, "Château de Versailles")
	assert.Contains(t, msg.HTMLBody, "21/06/2025 18:30")
	assert.Contains(t, msg.HTMLBody, "Marc")
	assert.Contains(t, msg.HTMLBody, "https://app.example.com/rsvp/"+guest.ID.String())
}

func TestSendReminder(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	sent := capture(m)

	email := "bruno@example.com"
	event := &entities.Event{ID: uuid.New(), Name: "Gala"}
	guest := &entities.Guest{ID: uuid.New(), Name: "Bruno", Email: &email}

	require.NoError(t, m.SendReminder(context.Background(), event, guest))
	require.Len(t, *sent, 1)
	assert.Equal(t, "Rappel : Gala", (*sent)[0].Subject)
	assert.Contains(t, (*sent)[0].HTMLBody, "pas encore reçu votre réponse")
	assert.NotContains(t, (*sent)[0].HTMLBody, "Lieu")
}

func TestSend_NoRecipientIsPermanent(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	sent := capture(m)

	blank := "  "
	err := m.SendInvitation(context.Background(), &entities.Event{Name: "Gala"}, &entities.Guest{Name: "Chloé", Email: &blank})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRecipient))
	var permanent *backoff.PermanentError
	assert.True(t, errors.As(err, &permanent))
	assert.Empty(t, *sent)
}

func TestNewSMTPMailer_LogOnlyWithoutHost(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	email := "alice@example.com"

	err := m.SendInvitation(context.Background(), &entities.Event{Name: "Gala"}, &entities.Guest{ID: uuid.New(), Name: "Alice", Email: &email})
	assert.NoError(t, err)
}

func TestBuildMessage(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	raw := string(m.buildMessage(&Message{To: "alice@example.com", Subject: "Invitation : Gala", HTMLBody: "<p>hi</p>"}))

	assert.True(t, strings.HasPrefix(raw, "From: Event Planner <no-reply@example.com>\r\n"))
	assert.Contains(t, raw, "To: alice@example.com\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")
}

func TestSend_RejectsLineBreakInRecipient(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	sent := capture(m)

	email := "alice@example.com\r\nBcc: victim@example.com"
	err := m.SendInvitation(context.Background(), &entities.Event{Name: "Gala"}, &entities.Guest{ID: uuid.New(), Name: "Alice", Email: &email})

	require.ErrorIs(t, err, ErrInvalidRecipient)
	var permanent *backoff.PermanentError
	assert.True(t, errors.As(err, &permanent))
	assert.Empty(t, *sent)
}

func TestBuildMessage_FoldsLineBreaksInHeaders(t *testing.T) {
	m := NewSMTPMailer(testConfig(), zap.NewNop())
	raw := string(m.buildMessage(&Message{
		To:       "alice@example.com",
		Subject:  "Invitation : Gala\r\nBcc: victim@example.com",
		HTMLBody: "<p>hi</p>",
	}))

	assert.Contains(t, raw, "Subject: Invitation : Gala  Bcc: victim@example.com\r\n")
	assert.NotContains(t, raw, "\r\nBcc:")
}
