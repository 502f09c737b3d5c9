package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/webhook"
)

// publish отправляет событие изменения. Ошибка доставки не отменяет уже выполненное изменение, поэтому только логируется.
func publish(ctx context.Context, log *logrus.Entry, publisher webhook.Publisher, event webhook.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish change event")
	}
}
