package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	mail "github.com/go-mail/mail/v2"
	"github.com/linskybing/fyp-portal/internal/config"
)

type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Notifier delivers workflow decisions to the affected student.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// New returns an SMTP notifier, or a no-op one when SMTP_HOST is unset.
func New() Notifier {
	if config.SMTPHost == "" || config.SMTPFrom == "" {
		log.Println("[notify] SMTP not configured, notifications disabled")
		return Noop{}
	}
	return &SMTPNotifier{
		host: config.SMTPHost,
		port: config.SMTPPort,
		user: config.SMTPUser,
		pass: config.SMTPPass,
		from: config.SMTPFrom,
	}
}

type SMTPNotifier struct {
	host string
	port int
	user string
	pass string
	from string
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := mail.NewDialer(n.host, n.port, n.user, n.pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: n.host}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %v: %w", msg.To, err)
	}
	return nil
}

type Noop struct{}

func (Noop) Send(context.Context, Message) error { return nil }
