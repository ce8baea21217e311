package services

import (
	"context"
	"log/slog"

	"github.com/l3montree-dev/ohsms/database/models"
	"github.com/l3montree-dev/ohsms/monitoring"
	"github.com/l3montree-dev/ohsms/shared"
)

type incidentChangeBroadcaster struct {
	broker   shared.PubSubBroker
	notifier shared.EscalationNotifier
}

var _ shared.IncidentChangeBroadcaster = &incidentChangeBroadcaster{}

func NewIncidentChangeBroadcaster(broker shared.PubSubBroker, notifier shared.EscalationNotifier) *incidentChangeBroadcaster {
	return &incidentChangeBroadcaster{broker: broker, notifier: notifier}
}

// Broadcast publishes the change to every replica and mails escalations.
// Errors are logged only, the mutation already committed.
func (b *incidentChangeBroadcaster) Broadcast(ctx context.Context, incident models.Incident, event models.IncidentEvent) {
	msg := shared.NewSimplePubSubMessage(shared.IncidentChange, map[string]any{
		"incidentId": incident.ID.String(),
		"number":     incident.Number,
		"action":     string(event.Action),
		"status":     string(incident.Status),
		"eventId":    event.ID.String(),
	})
	if err := b.broker.Publish(ctx, msg); err != nil {
		monitoring.IncidentBroadcastFailedAmount.Inc()
		slog.Warn("could not publish incident change", "incident", incident.Number, "err", err)
	}

	if event.Action == models.IncidentEventEscalate {
		b.notifier.NotifyEscalation(ctx, incident, event)
	}
}
