package email

import (
	"context"

	"github.com/HiI2O/lunch-hub/internal/application"
	"github.com/HiI2O/lunch-hub/pkg/helpers"
	"github.com/HiI2O/lunch-hub/pkg/mailer"
)

// QueueEmailService publishes rendered emails to the RabbitMQ queue
// consumed by the email worker. A publish failure fails the use case so
// the caller can surface it instead of silently dropping mail.
type QueueEmailService struct {
	publisher *helpers.RabbitPublisher
}

func NewQueueEmailService(publisher *helpers.RabbitPublisher) *QueueEmailService {
	return &QueueEmailService{publisher: publisher}
}

var _ application.EmailService = (*QueueEmailService)(nil)

func (s *QueueEmailService) Send(ctx context.Context, msg application.EmailMessage) error {
	return s.publisher.PublishJSON(ctx, mailer.EmailJob{
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
}
