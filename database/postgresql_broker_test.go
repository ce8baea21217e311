package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/ohsms/database"
	"github.com/l3montree-dev/ohsms/integrationtestutil"
	"github.com/l3montree-dev/ohsms/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgreSQLBroker(t *testing.T) {
	_, pool := integrationtestutil.InitDatabaseContainer(t)

	t.Run("should deliver a published message to the subscribers of the topic", func(t *testing.T) {
		broker, err := database.NewPostgreSQLBroker(pool)
		require.NoError(t, err)
		broker.SetShouldReceiveOwnMessages(true)

		ch, err := broker.Subscribe(shared.IncidentChange)
		require.NoError(t, err)
		assert.Equal(t, []shared.PubSubChannel{shared.IncidentChange}, broker.GetActiveTopics())
		assert.True(t, broker.IsHealthy(context.Background()))

		require.NoError(t, broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.IncidentChange, map[string]any{"number": "2026-0001"})))

		select {
		case payload := <-ch:
			assert.Equal(t, "2026-0001", payload["number"])
		case <-time.After(5 * time.Second):
			t.Fatal("no message received")
		}
	})

	t.Run("should refuse payloads above the notify limit", func(t *testing.T) {
		broker, err := database.NewPostgreSQLBroker(pool)
		require.NoError(t, err)

		big := make([]byte, 8000)
		for i := range big {
			big[i] = 'x'
		}
		err = broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.IncidentChange, map[string]any{"note": string(big)}))
		assert.Error(t, err)
	})
}
