package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lexhub/config"
	"lexhub/models"
	"lexhub/utils"

	"go.uber.org/zap"
)

const (
	brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

	sendAttempts = 3
	retryDelay   = time.Second
)

// NotificationService delivers transactional email to platform users.
type NotificationService interface {
	SendEmail(toEmail, toName, subject, htmlBody string) error
	SendConsultationBooked(toEmail string, c *models.Consultation, lawyerName string) error
	SendConsultationReminder(toEmail string, c *models.Consultation, lawyerName string) error
}

// BrevoNotificationService sends email through the Brevo transactional
// API. Each send is retried a few times before giving up.
type BrevoNotificationService struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	httpClient  *http.Client
}

// NewBrevoNotificationService creates the production NotificationService,
// or nil when no API key is configured.
func NewBrevoNotificationService() *BrevoNotificationService {
	if strings.TrimSpace(config.AppConfig.BrevoAPIKey) == "" {
		return nil
	}
	senderName := config.AppConfig.EmailSenderName
	if senderName == "" {
		senderName = config.AppConfig.EmailSender
	}
	return &BrevoNotificationService{
		apiKey:      config.AppConfig.BrevoAPIKey,
		senderEmail: config.AppConfig.EmailSender,
		senderName:  senderName,
		endpoint:    brevoEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

type brevoSendRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HtmlContent string       `json:"htmlContent"`
}

type brevoParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// SendEmail delivers a single HTML email, retrying transient failures.
func (s *BrevoNotificationService) SendEmail(toEmail, toName, subject, htmlBody string) error {
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("missing recipient email")
	}

	var lastErr error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if lastErr = s.send(toEmail, toName, subject, htmlBody); lastErr == nil {
			return nil
		}
		utils.GetLogger().Warn("Email send attempt failed",
			zap.Int("attempt", attempt), zap.String("to", toEmail), zap.Error(lastErr))
		if attempt < sendAttempts {
			time.Sleep(retryDelay)
		}
	}
	return fmt.Errorf("email to %s failed after %d attempts: %w", toEmail, sendAttempts, lastErr)
}

func (s *BrevoNotificationService) send(toEmail, toName, subject, htmlBody string) error {
	payload := brevoSendRequest{
		Sender:      brevoParty{Email: s.senderEmail, Name: s.senderName},
		To:          []brevoParty{{Email: toEmail, Name: toName}},
		Subject:     subject,
		HtmlContent: htmlBody,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (s *BrevoNotificationService) SendConsultationBooked(toEmail string, c *models.Consultation, lawyerName string) error {
	subject := "New consultation booked"
	when := c.ScheduledAt.In(config.Location).Format("Mon, 02 Jan 2006 at 15:04")
	body := fmt.Sprintf(
		`<h2>New consultation booked</h2>
<p>A %s consultation has been booked with %s.</p>
<p><strong>When:</strong> %s<br><strong>Duration:</strong> %d minutes</p>`,
		c.Type, lawyerName, when, c.Duration)
	return s.SendEmail(toEmail, lawyerName, subject, body)
}

func (s *BrevoNotificationService) SendConsultationReminder(toEmail string, c *models.Consultation, lawyerName string) error {
	subject := "Upcoming consultation reminder"
	when := c.ScheduledAt.In(config.Location).Format("Mon, 02 Jan 2006 at 15:04")
	body := fmt.Sprintf(
		`<h2>Consultation reminder</h2>
<p>Your %s consultation with %s starts soon.</p>
<p><strong>When:</strong> %s<br><strong>Duration:</strong> %d minutes</p>`,
		c.Type, lawyerName, when, c.Duration)
	if c.MeetingLink != "" {
		body += fmt.Sprintf(`<p><a href="%s">Join the meeting</a></p>`, c.MeetingLink)
	}
	return s.SendEmail(toEmail, lawyerName, subject, body)
}
