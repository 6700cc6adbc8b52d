package kafka

import (
	"context"
	"errors"
	"testing"

	kafka_config "atlaz/pkg/kafka/config"
	"atlaz/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closes   int
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closes++
	return nil
}

func TestNewProducer_RequiresBrokersAndTopic(t *testing.T) {
	log := logger.NewNop()

	_, err := NewProducer(&kafka_config.Config{}, log)
	assert.ErrorIs(t, err, ErrNoBrokers)

	_, err = NewProducer(&kafka_config.Config{Brokers: []string{"localhost:9092"}}, log)
	assert.ErrorIs(t, err, ErrEmptyTopic)

	p, err := NewProducer(&kafka_config.Config{Brokers: []string{"localhost:9092"}, Topic: "bookings.events"}, log)
	require.NoError(t, err)
	assert.Equal(t, "bookings.events", p.Topic())
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "bookings.events")

	msg, err := NewMessage().
		WithKey("2025-12-01").
		WithJSONValue(map[string]string{"name": "X"}).
		WithEventType("booking.added").
		Build()
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), msg))
	require.Len(t, w.messages, 1)
	assert.Equal(t, "2025-12-01", string(w.messages[0].Key))
	assert.JSONEq(t, `{"name":"X"}`, string(w.messages[0].Value))

	headers := map[string]string{}
	for _, h := range w.messages[0].Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "booking.added", headers[HeaderEventType])
	assert.NotEmpty(t, headers[HeaderEventID])
	assert.NotEmpty(t, headers[HeaderTimestamp])
}

func TestProducer_PublishRejectsInvalidMessages(t *testing.T) {
	p := newProducer(&fakeWriter{}, "t")

	assert.ErrorIs(t, p.Publish(context.Background(), Message{Value: []byte("x")}), ErrEmptyKey)
	assert.ErrorIs(t, p.Publish(context.Background(), Message{Key: "k"}), ErrEmptyValue)
}

func TestProducer_PublishPropagatesWriterError(t *testing.T) {
	writeErr := errors.New("leader not available")
	p := newProducer(&fakeWriter{err: writeErr}, "t")

	err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")})
	assert.ErrorIs(t, err, writeErr)
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t")

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closes)

	err := p.Publish(context.Background(), Message{Key: "k", Value: []byte("v")})
	assert.ErrorIs(t, err, ErrProducerClosed)
}

func TestCompressionAndAcks(t *testing.T) {
	assert.Equal(t, compress.Gzip, compression("gzip"))
	assert.Equal(t, compress.Snappy, compression("unknown"))
	assert.Equal(t, kafka.RequireOne, requiredAcks(1))
	assert.Equal(t, kafka.RequireAll, requiredAcks(-1))
	assert.Equal(t, kafka.RequireNone, requiredAcks(0))
}

func TestMessageBuilder_JSONError(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithJSONValue(make(chan int)).Build()
	assert.Error(t, err)
}
