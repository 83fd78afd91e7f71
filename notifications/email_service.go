package notifications

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/globalscholars/study_abroad/configs"
	"github.com/go-resty/resty/v2"
)

const brevoURL = "https://api.brevo.com/v3/smtp/email"

// EmailService sends transactional email through Brevo. A nil service (or
// one built without an API key) silently drops every send, so callers never
// have to guard their notification calls.
type EmailService struct {
	client      *resty.Client
	apiKey      string
	senderEmail string
	senderName  string
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func NewEmailService(cfg configs.Config) *EmailService {
	if cfg.BrevoAPIKey == "" || cfg.EmailSender == "" || cfg.EmailSenderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return nil
	}

	return &EmailService{
		client:      resty.New().SetTimeout(10 * time.Second),
		apiKey:      cfg.BrevoAPIKey,
		senderEmail: cfg.EmailSender,
		senderName:  cfg.EmailSenderName,
	}
}

// Send delivers one email, logging failures instead of surfacing them.
// Intended to be called from a goroutine alongside the request.
func (s *EmailService) Send(toName, toEmail, subject, htmlContent string) {
	if s == nil {
		return
	}
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		log.Printf("Skipping email with invalid recipient: %q", toEmail)
		return
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.senderName, "email": s.senderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	resp, err := s.client.R().
		SetHeader("api-key", s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(brevoURL)
	if err != nil {
		log.Printf("Failed to send email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Brevo rejected email to %s: %d %s", toEmail, resp.StatusCode(), resp.String())
		return
	}

	log.Printf("Email sent to %s: %s", toEmail, subject)
}

// WelcomeBody renders the registration email.
func WelcomeBody(name string) string {
	return fmt.Sprintf("<h1>Welcome, %s!</h1><p>Your study-abroad journey starts here. Browse our courses and destinations to get going.</p>", name)
}

// PaymentConfirmedBody renders the enrollment payment receipt email.
func PaymentConfirmedBody(courseTitle, reference string) string {
	return fmt.Sprintf("<h1>Payment Confirmed</h1><p>Your enrollment in <strong>%s</strong> is now active.</p><p>Payment reference: %s</p>", courseTitle, reference)
}

// ConsultationReceivedBody renders the consultation acknowledgement email.
func ConsultationReceivedBody(name string) string {
	return fmt.Sprintf("<h1>Thank you, %s!</h1><p>We received your consultation request. A counselor will reach out shortly.</p>", name)
}
