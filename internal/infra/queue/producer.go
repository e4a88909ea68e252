package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationKindContact = "CONTACT"
	NotificationKindLead    = "LEAD"
)

// NotificationPayload is the event published when an inquiry arrives. The
// worker turns it into an email to the site inbox.
type NotificationPayload struct {
	Kind       string    `json:"kind"`
	LeadID     string    `json:"leadId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message,omitempty"`
	Source     string    `json:"source,omitempty"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type ProducerInterface interface {
	PublishNotification(ctx context.Context, payload NotificationPayload) error
}

type Producer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding notification payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}
	return nil
}
