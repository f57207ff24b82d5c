package adapter

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/google/uuid"
)

const defaultSMTPTimeout = 30 * time.Second

// SMTPMailer sends multipart/alternative emails through a single SMTP relay.
type SMTPMailer struct {
	addr     string
	host     string
	username string
	password string
	from     mail.Address

	logger *logger.Logger
}

// NewSMTPMailer returns a [Mailer] bound to cfg.SMTPHost:cfg.SMTPPort.
// PLAIN authentication is used only when cfg.Username is set.
func NewSMTPMailer(cfg config.Mail, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		host:     cfg.SMTPHost,
		username: cfg.Username,
		password: cfg.Password,
		from:     mail.Address{Name: cfg.FromName, Address: cfg.From},
		logger:   log,
	}
}

// Send implements [Mailer]. The connection deadline follows ctx.
func (m *SMTPMailer) Send(ctx context.Context, msg Mail) error {
	if len(msg.To) == 0 {
		return ErrMailMissingRecipient
	}

	body, err := m.compose(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	if err = m.deliver(ctx, msg.To, body); err != nil {
		m.logger.Err(err).
			Str("func", "*SMTPMailer.Send").
			Strs("to", msg.To).
			Str("subject", msg.Subject).
			Msg("error sending mail")
		return fmt.Errorf("%w: %w", ErrMailSend, err)
	}

	m.logger.Debug().
		Str("func", "*SMTPMailer.Send").
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Msg("mail sent")

	return nil
}

func (m *SMTPMailer) deliver(ctx context.Context, to []string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(defaultSMTPTimeout)
	}
	if err = conn.SetDeadline(deadline); err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer client.Close()

	if m.username != "" {
		if err = client.Auth(smtp.PlainAuth("", m.username, m.password, m.host)); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err = client.Mail(m.from.Address); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(body); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("closing body: %w", err)
	}

	return client.Quit()
}

// compose renders the RFC 5322 message. The plain text part comes first so
// clients that support HTML prefer the last alternative.
func (m *SMTPMailer) compose(msg Mail) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	headers := []struct{ k, v string }{
		{"From", m.from.String()},
		{"To", strings.Join(msg.To, ", ")},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", time.Now().Format(time.RFC1123Z)},
		{"Message-ID", "<" + uuid.NewString() + "@" + m.host + ">"},
		{"MIME-Version", "1.0"},
		{"Content-Type", `multipart/alternative; boundary="` + mw.Boundary() + `"`},
	}

	var head bytes.Buffer
	for _, h := range headers {
		head.WriteString(h.k + ": " + h.v + "\r\n")
	}
	head.WriteString("\r\n")

	parts := []struct{ contentType, content string }{
		{"text/plain; charset=utf-8", msg.Text},
		{"text/html; charset=utf-8", msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		pw, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, err
		}
		if _, err = pw.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	return append(head.Bytes(), buf.Bytes()...), nil
}
