package activity

import (
	"context"
	"errors"
	"testing"

	"healthease-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes Persistent JSON To Queue", func(t *testing.T) {
		channel := new(mockChannel)
		publisher := newRabbitMQPublisher(channel, "healthease.activity", zap.NewNop())
		event := NewEvent(constvars.ActivityEventAppointmentBooked, "u1", map[string]interface{}{"doctor_id": "d1"})

		var published amqp091.Publishing
		channel.On("PublishWithContext", ctx, "", "healthease.activity", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) {
				published = args.Get(5).(amqp091.Publishing)
			}).
			Return(nil)

		err := publisher.Publish(ctx, event)

		require.NoError(t, err)
		channel.AssertExpectations(t)
		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, event.EventID, published.MessageId)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, constvars.ActivityEventAppointmentBooked, decoded["type"])
		assert.Equal(t, "u1", decoded["user_id"])
	})

	t.Run("Broker Failure Is Returned", func(t *testing.T) {
		channel := new(mockChannel)
		publisher := newRabbitMQPublisher(channel, "healthease.activity", zap.NewNop())
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("channel closed"))

		err := publisher.Publish(ctx, NewEvent(constvars.ActivityEventSOSTriggered, "u1", nil))

		assert.Error(t, err)
	})
}

func TestLogPublisher(t *testing.T) {
	publisher := NewLogPublisher(zap.NewNop())

	assert.NoError(t, publisher.Publish(context.Background(), NewEvent(constvars.ActivityEventSessionEstablished, "u1", nil)))
	assert.NoError(t, publisher.Close())
}
