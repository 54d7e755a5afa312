package service

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/bgcollection/storefront/internal/config"
	"github.com/bgcollection/storefront/internal/i18n"
	"github.com/bgcollection/storefront/internal/models"
)

// EmailService 下单确认邮件（SMTP）
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled 是否启用邮件发送
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendOrderConfirmation 发送下单确认邮件
func (s *EmailService) SendOrderConfirmation(order *models.OrderSnapshot, locale string) error {
	if order == nil {
		return ErrOrderNotFound
	}
	subject, body := buildOrderConfirmationContent(order, locale)
	return s.send(order.CustomerContact.Email, subject, body)
}

func (s *EmailService) send(toEmail, subject, body string) error {
	if !s.Enabled() {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	msg := composeEmail(formatFromAddress(s.cfg.From, s.cfg.FromName), toEmail, subject, body)
	err := deliverSMTP(smtpDelivery{
		addr:     net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port)),
		host:     s.cfg.Host,
		auth:     auth,
		implicit: s.cfg.UseSSL,
		startTLS: s.cfg.UseTLS && !s.cfg.UseSSL,
		from:     s.cfg.From,
		to:       []string{toEmail},
		msg:      []byte(msg),
	})
	return classifyEmailSendError(err)
}

func buildOrderConfirmationContent(order *models.OrderSnapshot, locale string) (string, string) {
	subject := i18n.Sprintf(locale, "email.order_confirmation.subject", order.OrderID)
	var lines strings.Builder
	for _, line := range order.Lines {
		fmt.Fprintf(&lines, "- %s%s x%d = %s\n", line.Name, cartLineVariant(line), line.Quantity, formatRupees(line.LineTotal()))
	}
	body := i18n.Sprintf(locale, "email.order_confirmation.body",
		order.CustomerName,
		order.OrderID,
		strings.TrimRight(lines.String(), "\n"),
		formatRupees(order.Total),
		order.ShippingAddress,
	)
	return subject, body
}

func formatFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	return (&mail.Address{Name: mime.QEncoding.Encode("UTF-8", name), Address: from}).String()
}

func composeEmail(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("UTF-8", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body
}

type smtpDelivery struct {
	addr     string
	host     string
	auth     smtp.Auth
	implicit bool // 465 端口直接 TLS
	startTLS bool
	from     string
	to       []string
	msg      []byte
}

func deliverSMTP(d smtpDelivery) error {
	var client *smtp.Client
	if d.implicit {
		conn, err := tls.Dial("tcp", d.addr, &tls.Config{ServerName: d.host})
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, d.host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		var err error
		client, err = smtp.Dial(d.addr)
		if err != nil {
			return err
		}
	}
	defer client.Close()

	if d.startTLS {
		if err := client.StartTLS(&tls.Config{ServerName: d.host}); err != nil {
			return err
		}
	}
	if d.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(d.auth); err != nil {
				return err
			}
		}
	}
	if err := client.Mail(d.from); err != nil {
		return err
	}
	for _, rcpt := range d.to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(d.msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

var recipientRejectedKeywords = []string{
	"no such recipient",
	"no such user",
	"recipient not found",
	"recipient address rejected",
	"invalid recipient",
	"user unknown",
	"unknown user",
	"unknown mailbox",
	"mailbox unavailable",
}

func classifyEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isRecipientRejected(err) {
		return ErrEmailRecipientRejected
	}
	return err
}

func isRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	if message == "" {
		return false
	}
	for _, keyword := range recipientRejectedKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	if !strings.Contains(message, "550") {
		return false
	}
	for _, hint := range []string{"recipient", "user", "mailbox", "address", "rcpt"} {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return false
}
