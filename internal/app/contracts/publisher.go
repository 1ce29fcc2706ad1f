package contracts

import (
	"agenda-service/internal/pkg/dto/requests"
	"context"
)

type AppointmentPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error
}
