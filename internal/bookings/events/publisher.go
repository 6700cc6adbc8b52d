package events

import (
	"context"
	"time"

	"atlaz/pkg/kafka"
	"atlaz/pkg/middleware"
	"atlaz/pkg/model"
)

const (
	EventTypeBookingAdded = "booking.added"
	SchemaVersion         = "1"

	DefaultPublishTimeout = 2 * time.Second
)

// Publisher announces accepted bookings to downstream consumers.
type Publisher interface {
	BookingAdded(ctx context.Context, booking model.Booking) error
	Close() error
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	producer messagePublisher
	source   string
	timeout  time.Duration
}

func NewKafkaPublisher(producer messagePublisher, source string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		source:   source,
		timeout:  DefaultPublishTimeout,
	}
}

// WithTimeout bounds how long a single publish may hold up the caller.
func (p *KafkaPublisher) WithTimeout(timeout time.Duration) *KafkaPublisher {
	p.timeout = timeout
	return p
}

// BookingAdded publishes the booking keyed by its date, so events for the
// same day land on the same partition. The write outlives a cancelled
// request but never runs past the publish timeout.
func (p *KafkaPublisher) BookingAdded(ctx context.Context, booking model.Booking) error {
	msg, err := kafka.NewMessage().
		WithKey(booking.Date).
		WithJSONValue(booking).
		WithEventType(EventTypeBookingAdded).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()
	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

type NopPublisher struct{}

func (NopPublisher) BookingAdded(context.Context, model.Booking) error { return nil }

func (NopPublisher) Close() error { return nil }
