package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	mail "github.com/go-mail/mail/v2"
	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/mocks"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type recordingSender struct {
	sent []*mail.Message
	err  error
}

func (r *recordingSender) DialAndSend(m ...*mail.Message) error {
	r.sent = append(r.sent, m...)
	return r.err
}

func escalatedIncident() (models.Incident, models.IncidentEvent) {
	incident := models.Incident{Model: models.Model{ID: uuid.New()}, Number: "2026-0042", Title: "Gas leak", Status: models.IncidentStatusInProgress, IncidentType: models.IncidentTypeUrgent}
	ev := models.NewIncidentEscalatedEvent(incident.ID, incident.Status, shared.Ptr("manager"), "Manager", "needs the plant manager")
	return incident, ev
}

func TestIncidentChangeBroadcaster(t *testing.T) {
	t.Run("should publish every change on the incident channel", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)
		notifier := mocks.NewEscalationNotifier(t)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Number: "2026-0001", Status: models.IncidentStatusClosed}
		ev := models.NewIncidentStatusEvent(incident.ID, models.IncidentEventClose, models.IncidentStatusOpen, models.IncidentStatusClosed, nil, "x", "")

		broker.On("Publish", mock.Anything, mock.MatchedBy(func(msg shared.PubSubMessage) bool {
			return msg.GetChannel() == shared.IncidentChange && msg.GetPayload()["number"] == "2026-0001" && msg.GetPayload()["status"] == "closed"
		})).Return(nil)

		NewIncidentChangeBroadcaster(broker, notifier).Broadcast(context.Background(), incident, ev)
		notifier.AssertNotCalled(t, "NotifyEscalation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should notify on escalation even if publishing fails", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)
		notifier := mocks.NewEscalationNotifier(t)
		incident, ev := escalatedIncident()

		broker.On("Publish", mock.Anything, mock.Anything).Return(fmt.Errorf("listen/notify unavailable"))
		notifier.On("NotifyEscalation", mock.Anything, incident, ev).Return()

		NewIncidentChangeBroadcaster(broker, notifier).Broadcast(context.Background(), incident, ev)
	})
}

func TestEscalationNotifier(t *testing.T) {
	config := MailConfig{Host: "smtp.example.com", Port: 587, From: "ohs@example.com", Recipients: []string{"safety@example.com"}}

	t.Run("should skip sending if mail is not configured", func(t *testing.T) {
		sender := &recordingSender{}
		n := &emailEscalationNotifier{config: MailConfig{}, sender: sender}
		incident, ev := escalatedIncident()

		n.NotifyEscalation(context.Background(), incident, ev)
		assert.Empty(t, sender.sent)
	})

	t.Run("should send one mail to the configured recipients", func(t *testing.T) {
		sender := &recordingSender{}
		n := &emailEscalationNotifier{config: config, sender: sender}
		incident, ev := escalatedIncident()

		n.NotifyEscalation(context.Background(), incident, ev)
		assert.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"safety@example.com"}, sender.sent[0].GetHeader("To"))
		assert.True(t, strings.Contains(sender.sent[0].GetHeader("Subject")[0], "2026-0042"))
	})

	t.Run("should swallow sender errors", func(t *testing.T) {
		sender := &recordingSender{err: fmt.Errorf("dial tcp: timeout")}
		n := &emailEscalationNotifier{config: config, sender: sender}
		incident, ev := escalatedIncident()

		assert.NotPanics(t, func() {
			n.NotifyEscalation(context.Background(), incident, ev)
		})
	})

	t.Run("should not send for a cancelled context", func(t *testing.T) {
		sender := &recordingSender{}
		n := &emailEscalationNotifier{config: config, sender: sender}
		incident, ev := escalatedIncident()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		n.NotifyEscalation(ctx, incident, ev)
		assert.Empty(t, sender.sent)
	})
}
