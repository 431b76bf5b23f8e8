package queue

import (
	"context"
	"testing"

	"tourdesk/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopPublisher_DiscardsEvents(t *testing.T) {
	var p noopPublisher

	err := p.PublishReservationEvent(context.Background(), &service.ReservationEvent{
		Event: service.EventReservationCreated,
	})

	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestAmqpPublisher_CloseBeforeDialIsSafe(t *testing.T) {
	p := &amqpPublisher{url: "amqp://localhost:5672/", queueName: defaultQueueName}

	require.NoError(t, p.Close())
	// A second close must not panic on the already-released connection.
	require.NoError(t, p.Close())
}
