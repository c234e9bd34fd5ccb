package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GEV-BookingService/internal/domain"
	"github.com/m04kA/GEV-BookingService/internal/service/contact/models"
)

type fakeSender struct {
	name    string
	enabled bool
	err     error
	sent    []domain.ContactMessage
}

func (f *fakeSender) Name() string  { return f.name }
func (f *fakeSender) Enabled() bool { return f.enabled }

func (f *fakeSender) Send(_ context.Context, msg domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeMetrics struct {
	deliveries map[string][]bool
}

func (m *fakeMetrics) IncContactDelivery(channel string, ok bool) {
	if m.deliveries == nil {
		m.deliveries = make(map[string][]bool)
	}
	m.deliveries[channel] = append(m.deliveries[channel], ok)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		Name:    " Paul ",
		Email:   "paul@example.com",
		Message: "Bonjour, proposez-vous des cours pour enfants ?",
	}
}

func TestSubmit_FirstChannelDelivers(t *testing.T) {
	smtp := &fakeSender{name: "smtp", enabled: true}
	relay := &fakeSender{name: "web3forms", enabled: true}
	metrics := &fakeMetrics{}
	svc := NewService(metrics, nopLogger{}, smtp, relay)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, models.MessageSent, resp.Message)
	assert.Equal(t, "smtp", resp.Channel)
	require.Len(t, smtp.sent, 1)
	assert.Equal(t, "Paul", smtp.sent[0].Name)
	assert.Empty(t, relay.sent)
	assert.Equal(t, []bool{true}, metrics.deliveries["smtp"])
}

func TestSubmit_FallsBackToNextChannel(t *testing.T) {
	smtp := &fakeSender{name: "smtp", enabled: true, err: errors.New("dial tcp: timeout")}
	disabled := &fakeSender{name: "web3forms", enabled: false}
	telegram := &fakeSender{name: "telegram", enabled: true}
	metrics := &fakeMetrics{}
	svc := NewService(metrics, nopLogger{}, smtp, disabled, telegram)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "telegram", resp.Channel)
	assert.Len(t, telegram.sent, 1)
	assert.Empty(t, disabled.sent)
	assert.Equal(t, []bool{false}, metrics.deliveries["smtp"])
	assert.NotContains(t, metrics.deliveries, "web3forms")
}

func TestSubmit_AllChannelsFail(t *testing.T) {
	failing := &fakeSender{name: "smtp", enabled: true, err: errors.New("auth failed")}
	svc := NewService(&fakeMetrics{}, nopLogger{}, failing)

	resp, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, models.MessageFailed, resp.Message)
}

func TestSubmit_NoChannelConfigured(t *testing.T) {
	svc := NewService(&fakeMetrics{}, nopLogger{}, &fakeSender{name: "smtp"})

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestSubmit_Honeypot(t *testing.T) {
	smtp := &fakeSender{name: "smtp", enabled: true}
	svc := NewService(&fakeMetrics{}, nopLogger{}, smtp)

	req := validRequest()
	req.Botcheck = "on"

	resp, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Empty(t, smtp.sent)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.SubmitRequest)
		want   error
	}{
		{name: "short name", mutate: func(r *models.SubmitRequest) { r.Name = "P" }, want: domain.ErrNameTooShort},
		{name: "bad email", mutate: func(r *models.SubmitRequest) { r.Email = "paul" }, want: domain.ErrInvalidEmail},
		{name: "short message", mutate: func(r *models.SubmitRequest) { r.Message = "Salut" }, want: domain.ErrMessageTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smtp := &fakeSender{name: "smtp", enabled: true}
			svc := NewService(&fakeMetrics{}, nopLogger{}, smtp)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.want.Error())
			assert.Empty(t, smtp.sent)
		})
	}
}
