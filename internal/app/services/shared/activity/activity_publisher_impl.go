package activity

import (
	"context"
	"time"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

type rabbitMQPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher declares queue as durable and publishes every client
// activity event to it as persistent JSON.
func NewRabbitMQPublisher(connection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.ActivityPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return newRabbitMQPublisher(channel, queue, logger), nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string, logger *zap.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	requestID := utils.RequestIDFromContext(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
		"event_type":       event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingQueueKey, p.Queue),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.Channel.Close()
}

type logPublisher struct {
	Log *zap.Logger
}

// NewLogPublisher only records events in the log.
func NewLogPublisher(logger *zap.Logger) contracts.ActivityPublisher {
	return &logPublisher{Log: logger}
}

func (p *logPublisher) Publish(ctx context.Context, event *models.ActivityEvent) error {
	p.Log.Debug("logPublisher.Publish activity event",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingUserIDKey, event.UserID),
		zap.Any(constvars.LoggingDataKey, event.Attributes),
	)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}

func NewEvent(eventType, userID string, attributes map[string]interface{}) *models.ActivityEvent {
	return &models.ActivityEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
}
