package services

import (
	"crypto/tls"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-gomail/gomail"

	"github.com/portfoliosite/backend/internal/config"
	"github.com/portfoliosite/backend/internal/models"
)

// Mailer delivers a validated contact submission to the site operator.
type Mailer interface {
	Send(sub models.ContactSubmission) error
}

// SMTPMailer sends over a single SMTP submission using the configured sender
// account. Port 465 gives an implicit-TLS connection (gomail's default for
// that port). No retry: a failed send surfaces as an error and the caller
// decides what to tell the client.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	to   string

	devMode bool
	now     func() time.Time
}

func NewSMTPMailer(cfg config.AppConfig) *SMTPMailer {
	return &SMTPMailer{
		host:    cfg.SMTPHost,
		port:    cfg.SMTPPort,
		user:    cfg.SMTPUser,
		pass:    cfg.SMTPPass,
		to:      cfg.ContactTo,
		devMode: cfg.DevMode,
		now:     time.Now,
	}
}

func (m *SMTPMailer) Send(sub models.ContactSubmission) error {
	now := m.now()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", sub.Email)
	msg.SetHeader("Subject", "Portfolio Contact: "+sub.Name)
	msg.SetBody("text/plain", textBody(sub, now))
	msg.AddAlternative("text/html", htmlBody(sub, now))

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if m.devMode {
		d.TLSConfig = &tls.Config{ServerName: m.host, InsecureSkipVerify: true}
	}
	return d.DialAndSend(msg)
}

// mailDate mimics the locale timestamp the operator is used to seeing in the
// delivered mail, e.g. "1/2/2006, 3:04:05 PM".
func mailDate(t time.Time) string {
	return t.Format("1/2/2006, 3:04:05 PM")
}

func textBody(sub models.ContactSubmission, now time.Time) string {
	return fmt.Sprintf(`
New Contact Form Submission
=========================

Name: %s
Email: %s
Date: %s

Message:
%s

--
Sent from your portfolio contact form
`, sub.Name, sub.Email, mailDate(now), sub.Message)
}

func htmlBody(sub models.ContactSubmission, now time.Time) string {
	name := html.EscapeString(sub.Name)
	email := html.EscapeString(sub.Email)
	message := strings.ReplaceAll(html.EscapeString(sub.Message), "\n", "<br>")

	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #6C63FF; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
    <p><strong>Date:</strong> %s</p>
  </div>
  <div style="margin: 20px 0;">
    <h3 style="color: #333;">Message:</h3>
    <div style="background: white; padding: 15px; border-left: 4px solid #6C63FF; margin: 10px 0;">
      %s
    </div>
  </div>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">
  <p style="color: #666; font-size: 12px; text-align: center;">
    Sent from your portfolio contact form
  </p>
</div>
`, name, email, email, mailDate(now), message)
}
