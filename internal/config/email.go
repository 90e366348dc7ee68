package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/Temoho9984/CareerConnect-Backend/internal/common"
)

// MailerConfig holds the Resend-compatible API settings for transactional
// mail (verification and password-reset messages).
type MailerConfig struct {
	APIKey string
	APIURL string
	Sender string
}

func NewMailerConfig() (*MailerConfig, error) {
	cfg := &MailerConfig{
		APIKey: os.Getenv("RESEND_API_KEY"),
		APIURL: os.Getenv("RESEND_API_URL"),
		Sender: os.Getenv("FROM_EMAIL"),
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not set")
	}
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("RESEND_API_URL is not set")
	}
	if cfg.Sender == "" {
		return nil, fmt.Errorf("FROM_EMAIL is not set")
	}
	return cfg, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

type EmailService struct {
	config *MailerConfig
	client *http.Client
}

func NewEmailService(lc fx.Lifecycle, config *MailerConfig) *EmailService {
	service := &EmailService{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Println("Mailer initialized, sending as", config.Sender)
			return nil
		},
	})
	return service
}

// SendEmail delivers one HTML message through the mail API. Failures are
// classified as Unavailable so auth flows can decide how hard to fail.
func (e *EmailService) SendEmail(to, subject, body string) error {
	payload := sendRequest{
		From:    e.config.Sender,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, e.config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return common.NewError(common.CodeUnavailable, "email delivery failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiError map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&apiError)
		return common.NewError(common.CodeUnavailable,
			fmt.Sprintf("email API returned %d: %v", resp.StatusCode, apiError), nil)
	}

	log.Println("Email sent to", to)
	return nil
}
