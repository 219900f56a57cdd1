package events

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Event types published by the storefront. Topic name equals event type, one
// topic per event.
const (
	TypeBookingConfirmed = "storefront.booking.confirmed.v1"
	TypeBookingCancelled = "storefront.booking.cancelled.v1"
	TypeContactReceived  = "storefront.contact.message.received.v1"
)

// Publisher writes storefront domain events to Kafka. With no brokers
// configured it degrades to a no-op so local development does not require a
// broker.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewPublisher(brokers string, logger *slog.Logger) *Publisher {
	list := SplitBrokers(brokers)
	if len(list) == 0 {
		logger.Warn("event publishing disabled (no kafka brokers configured)")
		return &Publisher{logger: logger}
	}
	return &Publisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:  list,
			Balancer: &kafka.Hash{},
		}),
		logger: logger,
	}
}

func (p *Publisher) Enabled() bool {
	return p != nil && p.writer != nil
}

// Publish marshals payload and writes it keyed by aggregateID. Events are
// best-effort: the storefront never fails a customer request because the
// broker is down, so callers log rather than propagate errors.
func (p *Publisher) Publish(ctx context.Context, eventType string, aggregateID string, payload any) error {
	if !p.Enabled() {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer("storefront/events").Start(ctx, "publish "+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attribute.String("messaging.destination.name", eventType)),
	)
	defer span.End()

	msg := kafka.Message{
		Topic: eventType,
		Key:   []byte(aggregateID),
		Value: raw,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.writer.Close()
}

func ReadyCheck(brokers string) func(context.Context) error {
	return func(ctx context.Context) error {
		list := SplitBrokers(brokers)
		if len(list) == 0 {
			return errors.New("kafka brokers not configured")
		}
		dialer := kafka.Dialer{Timeout: 2 * time.Second}
		conn, err := dialer.DialContext(ctx, "tcp", list[0])
		if err != nil {
			return err
		}
		_ = conn.Close()
		return nil
	}
}

func SplitBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
