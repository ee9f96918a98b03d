// Package notify delivers push notifications to user devices.
package notify

import (
	"context"
	"errors"
	"log/slog"
)

// Message is a push notification addressed to one device.
type Message struct {
	DeviceToken string            `json:"device_token"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Log writes messages to a logger instead of delivering them.
type Log struct {
	Logger *slog.Logger
}

func (l Log) Send(ctx context.Context, msg Message) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "push notification",
		"title", msg.Title,
		"body", msg.Body,
		"data", msg.Data,
	)
	return nil
}

// Fanout sends to every notifier and joins their errors.
type Fanout []Notifier

func (f Fanout) Send(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range f {
		if err := n.Send(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
