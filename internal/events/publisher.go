package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/bigrusstattoo/studio/internal/config"
	"github.com/bigrusstattoo/studio/internal/domain"
	"github.com/bigrusstattoo/studio/internal/logger"
)

// RequestStatusChangedEvent is published when an appointment request
// moves through its lifecycle. Consumers (analytics, follow-up tooling)
// are downstream; delivery is best-effort and never blocks the
// transition that produced it.
type RequestStatusChangedEvent struct {
	EventType  string               `json:"event_type"`
	TenantID   string               `json:"tenant_id"`
	RequestID  string               `json:"request_id"`
	FromStatus domain.RequestStatus `json:"from_status"`
	ToStatus   domain.RequestStatus `json:"to_status"`
	ActorID    string               `json:"actor_id,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// Key returns the message key for partitioning
func (e *RequestStatusChangedEvent) Key() string {
	return e.RequestID
}

// Publisher emits lifecycle events to Kafka. A nil Publisher (or one
// built with no brokers) is a no-op, so callers never need to branch on
// whether eventing is configured.
type Publisher struct {
	client *kgo.Client
	topic  string
	log    *logger.Logger
}

// NewPublisher creates a Kafka-backed publisher. Returns a no-op
// publisher when no brokers are configured.
func NewPublisher(cfg *config.KafkaConfig, log *logger.Logger) (*Publisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return &Publisher{log: log}, nil
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{client: client, topic: cfg.Topic, log: log}, nil
}

// PublishStatusChanged emits a lifecycle event. Failures are logged and
// swallowed; the status transition has already been committed.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event *RequestStatusChangedEvent) {
	if p == nil || p.client == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.log.ErrorContext(ctx, "failed to marshal lifecycle event", zap.Error(err))
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.Key()),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.log.Error("failed to publish lifecycle event",
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
		}
	})
}

// Close flushes pending records and releases the client
func (p *Publisher) Close() {
	if p == nil || p.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
