package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/albenaa/albenaa-api/internal/infra/http/middleware"
)

// NotificationSender delivers an inquiry notification to the site inbox.
type NotificationSender interface {
	SendInquiryNotification(payload NotificationPayload) error
}

// Consumer is the slice of *amqp.Channel the worker needs.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Sender  NotificationSender
}

func NewWorker(ch Consumer, sender NotificationSender) *Worker {
	return &Worker{Channel: ch, Sender: sender}
}

// Start consumes the notification queue until the channel closes. Malformed
// messages are rejected without requeue so they land in the DLQ instead of
// wedging the queue.
func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Printf("⚠️ worker: failed to register consumer, notifications disabled: %s", err)
		middleware.RecordNotificationError("consume")
		return
	}

	for d := range msgs {
		var payload NotificationPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("worker: invalid notification payload: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.Sender.SendInquiryNotification(payload); err != nil {
			log.Printf("worker: notification delivery failed for %s: %s", payload.Email, err)
			middleware.RecordNotificationError("deliver")
			d.Nack(false, false)
			continue
		}

		log.Printf("worker: %s notification delivered for %s", payload.Kind, payload.Email)
		d.Ack(false)
	}
}
