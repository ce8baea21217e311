package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	mail "github.com/go-mail/mail/v2"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
)

type MailConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	Recipients []string
}

// MailConfigFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD,
// SMTP_FROM and the comma separated ESCALATION_RECIPIENTS.
func MailConfigFromEnv() MailConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	var recipients []string
	for _, r := range strings.Split(os.Getenv("ESCALATION_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return MailConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		User:       os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		Recipients: recipients,
	}
}

func (c MailConfig) enabled() bool {
	return c.Host != "" && c.From != "" && len(c.Recipients) > 0
}

type mailSender interface {
	DialAndSend(m ...*mail.Message) error
}

type emailEscalationNotifier struct {
	config MailConfig
	sender mailSender
}

var _ shared.EscalationNotifier = &emailEscalationNotifier{}

func NewEscalationNotifier() *emailEscalationNotifier {
	config := MailConfigFromEnv()
	dialer := mail.NewDialer(config.Host, config.Port, config.User, config.Password)
	dialer.Timeout = 10 * time.Second
	dialer.StartTLSPolicy = mail.OpportunisticStartTLS
	return &emailEscalationNotifier{config: config, sender: dialer}
}

func escalationMessage(from string, to []string, incident models.Incident, event models.IncidentEvent) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", fmt.Sprintf("[OHS] Incident %s escalated", incident.Number))

	body := fmt.Sprintf("Incident %s (%s) was escalated by %s.\n\nTitle: %s\nStatus: %s\n",
		incident.Number, incident.IncidentType, event.ActorLabel, incident.Title, incident.Status)
	if event.Note != "" {
		body += "\nNote: " + event.Note + "\n"
	}
	m.SetBody("text/plain", body)
	return m
}

// NotifyEscalation mails the safety committee. Nothing is sent when SMTP or
// the recipients are not configured.
func (n *emailEscalationNotifier) NotifyEscalation(ctx context.Context, incident models.Incident, event models.IncidentEvent) {
	if !n.config.enabled() {
		slog.Debug("escalation mail not configured, skipping", "incident", incident.Number)
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}
	if err := n.sender.DialAndSend(escalationMessage(n.config.From, n.config.Recipients, incident, event)); err != nil {
		monitoring.NotificationFailedAmount.Inc()
		slog.Error("could not send escalation mail", "incident", incident.Number, "err", err)
		return
	}
	monitoring.NotificationSentAmount.Inc()
	slog.Info("sent escalation mail", "incident", incident.Number, "recipients", len(n.config.Recipients))
}
