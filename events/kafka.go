// Package events publishes domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Govind-619/Plug233/utils"
	"github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// Envelope is the JSON value written for every event.
type Envelope struct {
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// Producer writes every event to a single topic; the event type travels in
// the envelope and in the "type" header.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns nil when no brokers are configured.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &Producer{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		WriteTimeout:           writeTimeout,
		AllowAutoTopicCreation: true,
	}}
}

// Message builds the kafka message for an event.
func Message(eventType, key string, event interface{}) (kafka.Message, error) {
	data, err := json.Marshal(Envelope{
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    event,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}
	return kafka.Message{
		Key:     []byte(key),
		Value:   data,
		Headers: []kafka.Header{{Key: "type", Value: []byte(eventType)}},
	}, nil
}

func (p *Producer) Publish(ctx context.Context, eventType, key string, event interface{}) error {
	msg, err := Message(eventType, key, event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		utils.LogError("Failed to publish %s event for %s: %v", eventType, key, err)
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	utils.LogDebug("Published %s event for %s", eventType, key)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
