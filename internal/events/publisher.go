package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingConfirmed = "booking.confirmed"
)

// BookingEvent is the JSON payload consumed by the notification service.
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingToken string    `json:"booking_token"`
	SalonID      uint      `json:"salon_id"`
	UserID       uint      `json:"user_id"`
	BookingDate  string    `json:"booking_date"`
	BookingTime  string    `json:"booking_time"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher pushes booking events to Kafka off the request path, with
// the same drop-on-full policy as the audit queue: notifications must
// never block or fail an admission.
type Publisher struct {
	writer *kafka.Writer
	queue  chan BookingEvent
}

func NewPublisher(brokers []string, topic string) *Publisher {
	p := &Publisher{}

	if len(brokers) == 0 {
		log.Println("booking events disabled (no kafka brokers configured)")
		return p
	}

	p.writer = kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})
	p.queue = make(chan BookingEvent, 100)

	go p.worker()
	return p
}

func (p *Publisher) worker() {
	for ev := range p.queue {
		b, err := json.Marshal(ev)
		if err != nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(ev.BookingToken),
			Value: b,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(ev.Type)},
			},
		})
		cancel()

		if err != nil {
			log.Println("booking event publish failed:", err)
		}
	}
}

func (p *Publisher) Publish(ev BookingEvent) {
	if p.writer == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()

	select {
	case p.queue <- ev:
	default:
		log.Println("event queue full, dropping", ev.Type)
	}
}

func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	close(p.queue)
	return p.writer.Close()
}
