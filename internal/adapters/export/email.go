package export

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/zerr"
)

// sender delivers a composed message. Split out so tests can intercept
// delivery without an SMTP server.
type sender func(e *email.Email, addr string, auth smtp.Auth) error

// Mailer sends the weekly menu email over SMTP.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
	send     sender
}

// NewMailer creates an SMTP mailer.
func NewMailer(host string, port int, from, password string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// SendMenu emails the recipient links to the week's calendar and, when
// present, the PDF.
func (m *Mailer) SendMenu(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error {
	if recipient == "" || calendarURL == "" {
		return domain.ErrMissingRecipient
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{recipient}
	e.Subject = fmt.Sprintf("School Lunch Menu - Week %s", weekID)

	body := fmt.Sprintf(
		"<h2>School Lunch Menu</h2>"+
			"<p>The lunch calendar for week %s is ready.</p>"+
			"<p><a href=%q>View the calendar</a></p>",
		weekID, calendarURL,
	)
	if pdfURL != "" {
		body += fmt.Sprintf("<p><a href=%q>Download the PDF</a></p>", pdfURL)
	}
	e.HTML = []byte(body)
	e.Text = []byte(fmt.Sprintf(
		"The lunch calendar for week %s is ready.\nCalendar: %s\nPDF: %s\n",
		weekID, calendarURL, pdfURL,
	))

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	if err := m.send(e, addr, auth); err != nil {
		return zerr.Wrap(err, domain.ErrEmailSendFailed.Error())
	}
	return nil
}
