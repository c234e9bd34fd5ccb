package smtp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/pkg/logger"
)

type fakeDialer struct {
	messages []*gomail.Message
	err      error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

var message = domain.ContactMessage{
	Name:    "Paul",
	Email:   "paul@example.fr",
	Message: "Bonjour,\nune question <urgente>",
}

func TestSender_Send(t *testing.T) {
	dialer := &fakeDialer{}
	s := NewSenderWithDialer(dialer, "site@glisse-et-vent.fr", "contact@glisse-et-vent.fr", logger.NewWithWriter(io.Discard, "error"))

	require.NoError(t, s.Send(context.Background(), message))
	require.Len(t, dialer.messages, 1)

	m := dialer.messages[0]
	assert.Equal(t, []string{"site@glisse-et-vent.fr"}, m.GetHeader("From"))
	assert.Equal(t, []string{"contact@glisse-et-vent.fr"}, m.GetHeader("To"))
	assert.Equal(t, []string{domain.ContactSubject}, m.GetHeader("Subject"))
	assert.Equal(t, []string{`"Paul" <paul@example.fr>`}, m.GetHeader("Reply-To"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Subject: "+domain.ContactSubject)
	assert.Contains(t, buf.String(), "text/html")
}

func TestSender_SendError(t *testing.T) {
	s := NewSenderWithDialer(&fakeDialer{err: errors.New("535 auth failed")}, "a@b.fr", "c@d.fr", logger.NewWithWriter(io.Discard, "error"))

	assert.ErrorIs(t, s.Send(context.Background(), message), ErrSend)
}

func TestSender_NotConfigured(t *testing.T) {
	s := NewSender("", 587, "", "", "a@b.fr", "c@d.fr", logger.NewWithWriter(io.Discard, "error"))

	assert.False(t, s.Enabled())
	assert.ErrorIs(t, s.Send(context.Background(), message), ErrNotConfigured)
}
