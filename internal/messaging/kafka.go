// Package messaging publishes recommendation-served events to Kafka for
// offline evaluation of the ranking. Publishing is best-effort: the serving
// path never blocks on it.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/DhruvDewan08/course-recommendation-api/internal/config"
)

// ServedEvent records one served recommendation response.
type ServedEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    string    `json:"user_id"`
	TopN      int       `json:"top_n"`
	CourseIDs []string  `json:"course_ids"`
	ServedAt  time.Time `json:"served_at"`
}

func NewServedEvent(userID string, topN int, courseIDs []string) ServedEvent {
	return ServedEvent{
		EventID:   uuid.New(),
		UserID:    userID,
		TopN:      topN,
		CourseIDs: courseIDs,
		ServedAt:  time.Now().UTC(),
	}
}

type Publisher struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

func NewPublisher(cfg *config.Config, logger *logrus.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Events.Brokers...),
			Topic:        cfg.Events.Topic,
			Balancer:     &kafka.Hash{}, // key by user for per-user ordering
			RequiredAcks: kafka.RequireOne,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

func (p *Publisher) PublishServed(ctx context.Context, event ServedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal served event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID.String())},
			{Key: "served_at", Value: []byte(event.ServedAt.Format(time.RFC3339))},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish served event: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"event_id": event.EventID,
		"user_id":  event.UserID,
		"count":    len(event.CourseIDs),
	}).Debug("Served event published")

	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
