package queue

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type fakeConsumer struct {
	deliveries chan amqp.Delivery
	err        error
}

func (f *fakeConsumer) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.deliveries, nil
}

type fakeAcknowledger struct {
	acked  int
	nacked int
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked++
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked++
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

type fakeSender struct {
	payloads []NotificationPayload
	err      error
}

func (s *fakeSender) SendInquiryNotification(payload NotificationPayload) error {
	s.payloads = append(s.payloads, payload)
	return s.err
}

func TestWorkerConsumeFailureReturns(t *testing.T) {
	worker := NewWorker(&fakeConsumer{err: errors.New("channel closed")}, &fakeSender{})

	done := make(chan struct{})
	go func() {
		worker.Start(QueueName)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not return after consume failure")
	}
}

func TestWorkerDeliversAndAcks(t *testing.T) {
	ack := &fakeAcknowledger{}
	body, _ := json.Marshal(NotificationPayload{
		Kind:  NotificationKindLead,
		Name:  "Mariam",
		Email: "mariam@example.com",
	})

	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: ack, Body: body}
	close(deliveries)

	sender := &fakeSender{}
	worker := NewWorker(&fakeConsumer{deliveries: deliveries}, sender)
	worker.Start(QueueName)

	assert.Len(t, sender.payloads, 1)
	assert.Equal(t, NotificationKindLead, sender.payloads[0].Kind)
	assert.Equal(t, 1, ack.acked)
	assert.Equal(t, 0, ack.nacked)
}

func TestWorkerRejectsMalformedPayload(t *testing.T) {
	ack := &fakeAcknowledger{}
	deliveries := make(chan amqp.Delivery, 1)
	deliveries <- amqp.Delivery{Acknowledger: ack, Body: []byte("not json")}
	close(deliveries)

	sender := &fakeSender{}
	worker := NewWorker(&fakeConsumer{deliveries: deliveries}, sender)
	worker.Start(QueueName)

	assert.Empty(t, sender.payloads)
	assert.Equal(t, 1, ack.nacked)
}
