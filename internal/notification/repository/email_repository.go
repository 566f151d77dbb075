package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"conserje/internal/config"
	"conserje/internal/dto"
)

type sendEmailRequest struct {
	Sender   emailAddress      `json:"sender"`
	To       []emailAddress    `json:"to"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params"`
}

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// HTTPEmailRepository talks to the transactional-email provider. It is a
// separate client from the hotel API one: different host, different auth
// header.
type HTTPEmailRepository struct {
	url         string
	apiKey      string
	senderEmail string
	senderName  string
	httpClient  *http.Client
}

func NewHTTPEmailRepository(cfg config.MailerConfig) *HTTPEmailRepository {
	return &HTTPEmailRepository{
		url:         cfg.URL,
		apiKey:      cfg.APIKey,
		senderEmail: cfg.SenderEmail,
		senderName:  cfg.SenderName,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *HTTPEmailRepository) Send(ctx context.Context, msg dto.EmailMessage) error {
	payload, err := json.Marshal(sendEmailRequest{
		Sender:   emailAddress{Email: r.senderEmail, Name: r.senderName},
		To:       []emailAddress{{Email: msg.ToEmail, Name: msg.ToName}},
		Template: msg.Template,
		Params:   msg.Params,
	})
	if err != nil {
		return fmt.Errorf("encoding email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return nil
}
