package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var ErrMissingEmailProviderURL = errors.New("missing EMAIL_PROVIDER_URL")
var ErrMissingRecipient = errors.New("invoice has no client email")

// EmailChannel delivers reminders through an HTTP email provider.
//
// Env vars:
//   - EMAIL_PROVIDER_URL      provider send endpoint (required unless mocked)
//   - EMAIL_PROVIDER_API_KEY  bearer token, optional
//   - EMAIL_FROM              sender address (default: billing@invoicer.local)
//   - EMAIL_RATE_PER_SECOND   outbound rate limit (default: 5)
//   - EMAIL_PROVIDER_MOCK / NOTIFICATION_MOCK  skip the provider entirely
type EmailChannel struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	url        string
	apiKey     string
	from       string
	mockMode   bool
}

var _ interfaces.INotificationChannel = (*EmailChannel)(nil)

func NewEmailChannel() (*EmailChannel, error) {
	if isNotificationMockEnabled() {
		log.Printf("[notification][channel] mock mode enabled")
		return &EmailChannel{mockMode: true}, nil
	}

	url := strings.TrimSpace(os.Getenv("EMAIL_PROVIDER_URL"))
	if url == "" {
		log.Printf("[notification][channel] missing EMAIL_PROVIDER_URL")
		return nil, ErrMissingEmailProviderURL
	}

	perSecond := 5.0
	if v := os.Getenv("EMAIL_RATE_PER_SECOND"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			perSecond = parsed
		}
	}

	return &EmailChannel{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
		url:        url,
		apiKey:     os.Getenv("EMAIL_PROVIDER_API_KEY"),
		from:       getenvDefault("EMAIL_FROM", "billing@invoicer.local"),
	}, nil
}

type sendEmailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type sendEmailResult struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error"`
}

func (c *EmailChannel) Send(ctx context.Context, invoice entities.Invoice, reminderType entities.ReminderType) (interfaces.DeliveryResult, error) {
	if invoice.ClientEmail == "" {
		return interfaces.DeliveryResult{Error: ErrMissingRecipient.Error()}, ErrMissingRecipient
	}

	if c.mockMode {
		id := uuid.NewString()
		log.Printf("[notification][channel] mock send invoice_id=%s type=%s to=%s message_id=%s", invoice.ID, reminderType, invoice.ClientEmail, id)
		return interfaces.DeliveryResult{Success: true, MessageID: id}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return interfaces.DeliveryResult{Error: err.Error()}, err
	}

	subject, body := composeEmail(invoice, reminderType)
	payload, err := json.Marshal(sendEmailPayload{
		From:    c.from,
		To:      invoice.ClientEmail,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return interfaces.DeliveryResult{Error: err.Error()}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return interfaces.DeliveryResult{Error: err.Error()}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[notification][channel] send failed invoice_id=%s err=%v", invoice.ID, err)
		return interfaces.DeliveryResult{Error: err.Error()}, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	var result sendEmailResult
	_ = json.Unmarshal(raw, &result)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := result.Error
		if msg == "" {
			msg = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		log.Printf("[notification][channel] send rejected invoice_id=%s status=%d err=%s", invoice.ID, resp.StatusCode, msg)
		return interfaces.DeliveryResult{Error: msg}, nil
	}

	if result.MessageID == "" {
		result.MessageID = uuid.NewString()
	}
	log.Printf("[notification][channel] send success invoice_id=%s type=%s message_id=%s", invoice.ID, reminderType, result.MessageID)
	return interfaces.DeliveryResult{Success: true, MessageID: result.MessageID}, nil
}

func composeEmail(invoice entities.Invoice, reminderType entities.ReminderType) (subject, body string) {
	due := ""
	if invoice.DueDate != nil {
		due = invoice.DueDate.UTC().Format("2006-01-02")
	}
	amount := fmt.Sprintf("%.2f", invoice.Total)

	switch reminderType {
	case entities.ReminderTypeBeforeDue:
		subject = fmt.Sprintf("Upcoming invoice %s due %s", invoice.ID, due)
		body = fmt.Sprintf("Your invoice %s for %s is due on %s.", invoice.ID, amount, due)
	case entities.ReminderTypeOnDue:
		subject = fmt.Sprintf("Invoice %s is due today", invoice.ID)
		body = fmt.Sprintf("Your invoice %s for %s is due today (%s).", invoice.ID, amount, due)
	case entities.ReminderTypeAfterDue:
		subject = fmt.Sprintf("Invoice %s is overdue", invoice.ID)
		body = fmt.Sprintf("Your invoice %s for %s was due on %s and remains unpaid.", invoice.ID, amount, due)
	default:
		subject = fmt.Sprintf("Invoice %s payment reminder", invoice.ID)
		body = fmt.Sprintf("Your invoice %s for %s requires attention.", invoice.ID, amount)
	}
	return subject, body
}

func isNotificationMockEnabled() bool {
	for _, key := range []string{"EMAIL_PROVIDER_MOCK", "NOTIFICATION_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
