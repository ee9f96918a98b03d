package notify

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// fcmSender is the part of *messaging.Client used here.
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Android delivery settings for status updates.
const (
	androidChannelID = "status_updates"
	androidColor     = "#3B82F6"
	androidSound     = "default"
)

// FCM sends through Firebase Cloud Messaging.
type FCM struct {
	client fcmSender
}

func NewFCM(client *messaging.Client) *FCM {
	return &FCM{client: client}
}

func (f *FCM) Send(ctx context.Context, msg Message) error {
	_, err := f.client.Send(ctx, &messaging.Message{
		Token: msg.DeviceToken,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     androidSound,
				Color:     androidColor,
				ChannelID: androidChannelID,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("notify: fcm send: %w", err)
	}
	return nil
}
