package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationSender delivers the stage-change notice to the assignee.
type NotificationSender interface {
	SendStageChanged(to, leadName, toStage string) error
}

// AssigneeDirectory resolves a staff id to a contact email.
type AssigneeDirectory interface {
	FindEmailByID(ctx context.Context, userID string) (string, error)
}

// Worker consumes lead events and notifies assignees when their leads move.
// lead.created events are acknowledged without notification.
type Worker struct {
	Channel   *amqp.Channel
	Notifier  NotificationSender
	Directory AssigneeDirectory
}

func NewWorker(ch *amqp.Channel, notifier NotificationSender, directory AssigneeDirectory) *Worker {
	return &Worker{Channel: ch, Notifier: notifier, Directory: directory}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("registering RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("worker: malformed lead event: %s", err)
				// Malformed message. Reject without requeue so the
				// queue keeps moving; the DLQ keeps a copy.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), payload); err != nil {
				log.Printf("worker: lead %s notification failed: %s", payload.LeadID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, payload LeadEventPayload) error {
	if payload.Type != EventTypeStageChanged {
		return nil
	}
	if w.Notifier == nil || w.Directory == nil {
		return nil
	}

	email, err := w.Directory.FindEmailByID(ctx, payload.AssignedTo)
	if err != nil {
		return err
	}
	if email == "" {
		return nil
	}

	return w.Notifier.SendStageChanged(email, payload.LeadName, payload.ToStage)
}
