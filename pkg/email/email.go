package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	mail "gopkg.in/mail.v2"
)

var ErrNotConfigured = errors.New("email relay credentials are not configured")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type EmailService struct {
	cfg       Config
	from      string
	templates *template.Template
	dial      func(cfg Config, m *mail.Message) error
}

type messageData struct {
	Subject    string
	Paragraphs []string
}

type WelcomeEmailData struct {
	OwnerName    string
	BusinessName string
}

type CampaignDigestData struct {
	BusinessName  string
	CampaignCount int64
	Date          time.Time
}

// NewEmailService only fails when the embedded templates are broken. Missing
// credentials are reported by Send.
func NewEmailService(cfg Config) (*EmailService, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		cfg:       cfg,
		from:      cfg.Username,
		templates: templates,
		dial:      dialAndSend,
	}, nil
}

func (s *EmailService) Configured() bool {
	return s.cfg.Username != "" && s.cfg.Password != ""
}

func (s *EmailService) Send(ctx context.Context, msg Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	html := msg.HTML
	if html == "" {
		rendered, err := s.render("message.html", messageData{
			Subject:    msg.Subject,
			Paragraphs: paragraphs(msg.Text),
		})
		if err != nil {
			return err
		}
		html = rendered
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", html)

	log.Printf("Sending email to: %s subject: %q", msg.To, msg.Subject)
	if err := s.dial(s.cfg, m); err != nil {
		return err
	}
	return nil
}

func (s *EmailService) SendWelcomeEmail(ctx context.Context, to, ownerName, businessName string) error {
	data := WelcomeEmailData{
		OwnerName:    ownerName,
		BusinessName: businessName,
	}
	return s.sendTemplateEmail(ctx, to, "Welcome to GrowthAI, "+businessName+"!", "welcome.html", data,
		fmt.Sprintf("Hi %s,\n\n%s is ready. Generate your first promotion from the dashboard.", ownerName, businessName))
}

func (s *EmailService) SendCampaignDigest(ctx context.Context, to, businessName string, count int64, date time.Time) error {
	data := CampaignDigestData{
		BusinessName:  businessName,
		CampaignCount: count,
		Date:          date,
	}
	return s.sendTemplateEmail(ctx, to, "Your daily campaign summary", "campaign_digest.html", data,
		fmt.Sprintf("%s generated %d campaign(s) in the last 24 hours.", businessName, count))
}

func (s *EmailService) sendTemplateEmail(ctx context.Context, to, subject, templateName string, data interface{}, text string) error {
	body, err := s.render(templateName, data)
	if err != nil {
		return err
	}
	return s.Send(ctx, Message{
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    body,
	})
}

func (s *EmailService) render(templateName string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return "", fmt.Errorf("template execution error: %v", err)
	}
	return body.String(), nil
}

// dialAndSend uses implicit TLS on 465 and requires STARTTLS everywhere else.
func dialAndSend(cfg Config, m *mail.Message) error {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = cfg.Timeout
	if cfg.Port == 465 {
		d.SSL = true
	} else {
		d.StartTLSPolicy = mail.MandatoryStartTLS
	}
	return d.DialAndSend(m)
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var _ Sender = (*EmailService)(nil)
