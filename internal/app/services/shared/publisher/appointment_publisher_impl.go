package publisher

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type appointmentPublisher struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewAppointmentPublisher(channel *amqp091.Channel, queue string) contracts.AppointmentPublisher {
	return &appointmentPublisher{
		Channel: channel,
		Queue:   queue,
	}
}

func (p *appointmentPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event":        event.Event,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.AppointmentID,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}
