// Package notify implements the notification sink: best-effort email
// delivery to the studio inbox. Senders are only ever called from the queue
// dispatcher, never from the request path.
package notify

import (
	"context"
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// SMTPConfig captures the settings for the mail sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// SMTPSender delivers notifications over SMTP using gomail.
type SMTPSender struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send renders and delivers one notification. The context is honoured up
// front; gomail itself has no context support.
func (s *SMTPSender) Send(ctx context.Context, n ports.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var subject, body string
	switch n.Kind {
	case ports.NotifyServiceRequest:
		if n.Request == nil {
			return fmt.Errorf("notification %s missing request payload", n.Kind)
		}
		subject = "New Service Request: " + n.Request.ServiceType
		body = requestBody(n.Request)
	case ports.NotifyContactMessage:
		if n.Message == nil {
			return fmt.Errorf("notification %s missing message payload", n.Kind)
		}
		subject = "New Contact Form Submission: " + n.Message.Subject
		body = messageBody(n.Message)
	default:
		return fmt.Errorf("unknown notification kind %q", n.Kind)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func requestBody(r *domain.ServiceRequest) string {
	return fmt.Sprintf(`<h2>New Service Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Service Type:</strong> %s</p>
<p><strong>Description:</strong></p>
<p>%s</p>
<p><strong>Budget Range:</strong> %s - %s</p>
<p><em>This request was submitted from the studio website at %s</em></p>`,
		html.EscapeString(r.Name),
		html.EscapeString(r.Email),
		orDefault(r.Phone, "Not provided"),
		html.EscapeString(r.ServiceType),
		html.EscapeString(r.Description),
		orDefault(r.MinBudget, "Not specified"),
		orDefault(r.MaxBudget, "Not specified"),
		time.Now().Format(time.RFC1123),
	)
}

func messageBody(m *domain.ContactMessage) string {
	return fmt.Sprintf(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<p><em>This message was sent from the studio website at %s</em></p>`,
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		html.EscapeString(m.Subject),
		html.EscapeString(m.Message),
		time.Now().Format(time.RFC1123),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return html.EscapeString(s)
}
