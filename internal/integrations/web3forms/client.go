package web3forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/GEV-BookingService/internal/domain"
)

// ChannelName имя канала доставки в логах и метриках
const ChannelName = "web3forms"

// Client клиент сервиса пересылки форм (API совместим с web3forms)
type Client struct {
	url        string
	accessKey  string
	fromName   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url, accessKey, fromName string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:       url,
		accessKey: accessKey,
		fromName:  fromName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Name имя канала доставки
func (c *Client) Name() string {
	return ChannelName
}

// Enabled сообщает, настроен ли ключ доступа
func (c *Client) Enabled() bool {
	return c.accessKey != "" && c.url != ""
}

// Send пересылает сообщение формы контакта
func (c *Client) Send(ctx context.Context, msg domain.ContactMessage) error {
	if !c.Enabled() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(SubmitRequest{
		AccessKey: c.accessKey,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Subject:   domain.ContactSubject,
		FromName:  c.fromName,
		Botcheck:  false,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var result SubmitResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: status %d: failed to decode response: %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, result.Message)
	}

	c.log.Info("Web3Forms: contact message relayed for email=%s", msg.Email)
	return nil
}
