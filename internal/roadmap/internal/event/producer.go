package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/skillbridge/internal/pkg/mqx"
)

type NotificationEventProducer interface {
	Produce(ctx context.Context, evt NotificationEvent) error
}

func NewNotificationEventProducer(q mq.MQ) (NotificationEventProducer, error) {
	return mqx.NewGeneralProducer[NotificationEvent](q, NotificationTopic)
}
