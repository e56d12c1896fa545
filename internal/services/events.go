package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ConversionEventPublisher sends conversion audit events to Kafka.
// A nil writer turns publishing off.
type ConversionEventPublisher struct {
	kafkaWriter KafkaWriter
}

func NewConversionEventPublisher(kafkaWriter KafkaWriter) *ConversionEventPublisher {
	return &ConversionEventPublisher{kafkaWriter: kafkaWriter}
}

// PublishConversion writes the event keyed by its id. Failures are logged and never returned:
// an audit event must not fail the conversion it describes.
func (p *ConversionEventPublisher) PublishConversion(ctx context.Context, event models.ConversionEvent) {
	if p.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal conversion event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish conversion event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Conversion event published", "event_id", event.EventID, "from", event.From, "to", event.To)
}

// Close closes the underlying writer.
func (p *ConversionEventPublisher) Close() error {
	if p.kafkaWriter == nil {
		return nil
	}
	return p.kafkaWriter.Close()
}
