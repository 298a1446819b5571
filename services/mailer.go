// services/mailer.go
package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"minimind-backend/models"

	"gopkg.in/gomail.v2"
)

// MailerConfig carries the SMTP relay settings. Two independent sender
// credential pairs exist: one for order notifications, one for contact
// message notifications and manual replies. Receiver is the shared admin
// inbox both notification kinds are delivered to.
type MailerConfig struct {
	Host            string
	Port            int
	OrderSender     string
	OrderPassword   string
	MessageSender   string
	MessagePassword string
	Receiver        string
}

func MailerConfigFromEnv() MailerConfig {
	port := 465
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	return MailerConfig{
		Host:            host,
		Port:            port,
		OrderSender:     os.Getenv("SENDER_EMAIL"),
		OrderPassword:   os.Getenv("SENDER_EMAIL_PASSWORD"),
		MessageSender:   os.Getenv("MESSAGE_SENDER_EMAIL"),
		MessagePassword: os.Getenv("MESSAGE_SENDER_EMAIL_PASSWORD"),
		Receiver:        os.Getenv("RECEIVER_EMAIL"),
	}
}

// Mailer sends plain-text notification email over SMTP-SSL.
type Mailer struct {
	cfg MailerConfig

	// send is swappable so tests can run without a relay.
	send func(user, password string, m *gomail.Message) error
}

func NewMailer(cfg MailerConfig) *Mailer {
	mailer := &Mailer{cfg: cfg}
	mailer.send = func(user, password string, m *gomail.Message) error {
		d := gomail.NewDialer(cfg.Host, cfg.Port, user, password)
		d.SSL = cfg.Port == 465
		return d.DialAndSend(m)
	}
	return mailer
}

func (m *Mailer) orderConfigured() bool {
	return m.cfg.OrderSender != "" && m.cfg.OrderPassword != "" && m.cfg.Receiver != ""
}

func (m *Mailer) messageConfigured() bool {
	return m.cfg.MessageSender != "" && m.cfg.MessagePassword != "" && m.cfg.Receiver != ""
}

func (m *Mailer) replyConfigured() bool {
	return m.cfg.MessageSender != "" && m.cfg.MessagePassword != ""
}

// SendOrderNotification is fire-and-forget: the triggering order write has
// already succeeded, so a missing configuration or relay failure is logged
// and swallowed.
func (m *Mailer) SendOrderNotification(order models.Order) {
	if !m.orderConfigured() {
		log.Println("Email notification for new order is not configured. Skipping.")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.OrderSender)
	msg.SetHeader("To", m.cfg.Receiver)
	msg.SetHeader("Subject", "New Package Order: "+orNA(order.PackageName))
	msg.SetBody("text/plain", buildOrderBody(order))

	if err := m.send(m.cfg.OrderSender, m.cfg.OrderPassword, msg); err != nil {
		log.Printf("Failed to send new order email notification: %v", err)
		return
	}
	log.Printf("New order notification sent for order %s", order.OrderID)
}

// SendMessageNotification is the fire-and-forget alert for a new contact
// message, delivered with the message sender credentials.
func (m *Mailer) SendMessageNotification(message models.Message) {
	if !m.messageConfigured() {
		log.Println("Email for new message is not configured. Skipping.")
		return
	}

	subject := message.Subject
	if subject == "" {
		subject = "No Subject"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MessageSender)
	msg.SetHeader("To", m.cfg.Receiver)
	msg.SetHeader("Subject", "New Contact Message: "+subject)
	msg.SetBody("text/plain", buildMessageBody(message))

	if err := m.send(m.cfg.MessageSender, m.cfg.MessagePassword, msg); err != nil {
		log.Printf("Failed to send new message email notification: %v", err)
		return
	}
	log.Printf("New message notification sent for message from %s", message.Email)
}

// SendReply delivers a manual admin reply. Unlike the notification paths,
// delivery is the primary effect here and failures propagate to the caller.
func (m *Mailer) SendReply(recipient, subject, body string) error {
	if !m.replyConfigured() {
		return fmt.Errorf("Email sending not configured.")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MessageSender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.send(m.cfg.MessageSender, m.cfg.MessagePassword, msg); err != nil {
		return fmt.Errorf("Failed to send reply: %v", err)
	}
	log.Printf("Reply sent to %s", recipient)
	return nil
}

// SendReplyEmail formats a dashboard reply as "Re: <subject>" with the
// original message quoted below, then delivers it like SendReply.
func (m *Mailer) SendReplyEmail(name, email, subject, originalMessage, replyBody string) error {
	if subject == "" {
		subject = "Your Message"
	}
	return m.SendReply(email, "Re: "+subject, buildReplyEmailBody(name, email, subject, originalMessage, replyBody))
}

// SendDigest delivers the scheduled admin summary to the receiver address.
func (m *Mailer) SendDigest(subject, body string) error {
	if !m.messageConfigured() {
		return fmt.Errorf("digest email not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MessageSender)
	msg.SetHeader("To", m.cfg.Receiver)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.send(m.cfg.MessageSender, m.cfg.MessagePassword, msg)
}

func buildOrderBody(order models.Order) string {
	return fmt.Sprintf(`A new package order has been placed!

Order ID: %s
Package Name: %s
Package Price: %s

Customer Details:
Name: %s
Email: %s
Phone: %s
Company: %s

Project Details:
Budget: %s
Timeline: %s
Message: %s

Please check the admin dashboard for more details.
`,
		orNA(order.OrderID), orNA(order.PackageName), orNA(order.PackagePrice),
		orNA(order.Name), orNA(order.Email), orNA(order.Phone), orNA(order.Company),
		orNA(order.Budget), orNA(order.Timeline), orNA(order.Message))
}

func buildMessageBody(message models.Message) string {
	return fmt.Sprintf(`You have received a new contact message!

Name: %s
Email: %s
Subject: %s
Message:
%s

Received At: %s

Please check the admin dashboard for more details and to reply.
`,
		orNA(message.Name), orNA(message.Email), orNA(message.Subject),
		orNA(message.Message), message.ReceivedAt.Format("2006-01-02 15:04:05 MST"))
}

func buildReplyEmailBody(name, email, subject, originalMessage, replyBody string) string {
	return fmt.Sprintf(`Dear %s,

%s

---
Original Message:
From: %s <%s>
Subject: %s
Message:
%s
`, name, replyBody, name, email, subject, originalMessage)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
