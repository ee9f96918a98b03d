package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Kafka publishes notifications as JSON events for a downstream push
// gateway. Messages are keyed by device token so one device keeps ordering.
type Kafka struct {
	writer messageWriter
	topic  string
	closer func() error
}

func NewKafka(brokers []string, topic string) (*Kafka, error) {
	if len(brokers) == 0 {
		return nil, errors.New("notify: kafka requires at least one broker")
	}
	if topic == "" {
		return nil, errors.New("notify: kafka topic is empty")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.Hash{},
	}
	return &Kafka{writer: w, topic: topic, closer: w.Close}, nil
}

type notificationEvent struct {
	Type string    `json:"type"`
	Time time.Time `json:"time"`
	Message
}

func (k *Kafka) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(notificationEvent{
		Type:    "push_notification",
		Time:    time.Now().UTC(),
		Message: msg,
	})
	if err != nil {
		return err
	}

	err = k.writer.WriteMessages(ctx, kafka.Message{
		Topic: k.topic,
		Key:   []byte(msg.DeviceToken),
		Value: payload,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: kafka publish: %w", err)
	}
	return nil
}

func (k *Kafka) Close() error {
	if k.closer == nil {
		return nil
	}
	return k.closer()
}
