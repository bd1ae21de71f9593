package utils

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends the account notification emails. Every Send* method returns
// immediately; delivery happens on its own goroutine and failures are only
// logged.
type Mailer struct {
	from string
	send func(m *gomail.Message) error
	log  *logrus.Logger
}

// NewMailer builds a Mailer that delivers through an SMTP server. An empty
// host yields a Mailer that logs and drops every message.
func NewMailer(host string, port int, user, pass string, log *logrus.Logger) *Mailer {
	if host == "" {
		return NewMailerFunc(user, nil, log)
	}
	d := gomail.NewDialer(host, port, user, pass)
	return NewMailerFunc(user, func(m *gomail.Message) error {
		return d.DialAndSend(m)
	}, log)
}

// NewMailerFunc builds a Mailer around an arbitrary delivery function.
func NewMailerFunc(from string, send func(m *gomail.Message) error, log *logrus.Logger) *Mailer {
	return &Mailer{from: from, send: send, log: log}
}

// SendEmail delivers one message synchronously.
func (m *Mailer) SendEmail(to, subject, body string) error {
	if m.send == nil {
		return fmt.Errorf("smtp is not configured")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)
	return m.send(msg)
}

func (m *Mailer) dispatch(to, subject, body string) {
	go func() {
		if err := m.SendEmail(to, subject, body); err != nil {
			m.log.WithFields(logrus.Fields{
				"to":      to,
				"subject": subject,
			}).WithError(err).Warn("failed to send email")
		}
	}()
}

func (m *Mailer) SendOTPEmail(to, code string) {
	m.dispatch(to, "Your login code", fmt.Sprintf(`
		<p>Your one-time login code is <strong>%s</strong>.</p>
		<p>It expires in 5 minutes.</p>
	`, code))
}

// SendCredentialEmail mails the generated password of a new account.
func (m *Mailer) SendCredentialEmail(to, secret string) {
	m.dispatch(to, "Your account has been created", fmt.Sprintf(`
		<p>Your account is ready.</p>
		<p>Login email: %s<br/>Password: <strong>%s</strong></p>
	`, to, secret))
}

// SendLoginNotice tells the account owner what happened to their login code.
func (m *Mailer) SendLoginNotice(to, notice string) {
	m.dispatch(to, "Login activity", fmt.Sprintf("<p>%s</p>", notice))
}
