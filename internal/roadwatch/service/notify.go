package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/roadwatch/roadwatch/pkg/docstore"
	"github.com/roadwatch/roadwatch/pkg/metrics"
	"github.com/roadwatch/roadwatch/pkg/notify"
	"github.com/roadwatch/roadwatch/pkg/slogx"
)

const (
	usersCollection = "users"
	deviceTokenKey  = "fcmToken"
)

// ReportNotifier tells the reporter that a report changed status.
type ReportNotifier interface {
	NotifyStatusChange(ctx context.Context, r domain.Report, oldStatus, newStatus string)
}

// StatusNotifier resolves the reporter's device token from the user
// directory in the document store and pushes a message to it.
type StatusNotifier struct {
	Users    docstore.Store
	Notifier notify.Notifier
}

func (n *StatusNotifier) NotifyStatusChange(ctx context.Context, r domain.Report, oldStatus, newStatus string) {
	l := slogx.FromContext(ctx).With("report_id", r.ID, "user_id", r.UserID)

	if r.UserID == "" {
		metrics.Notification(metrics.OutcomeNoTarget)
		l.Debug("report has no user, skipping notification")
		return
	}

	token, err := n.deviceToken(ctx, r.UserID)
	if err != nil {
		metrics.Notification(metrics.OutcomeError)
		l.Warn("failed to look up device token", "error", err)
		return
	}
	if token == "" {
		metrics.Notification(metrics.OutcomeNoTarget)
		l.Debug("user has no device token, skipping notification")
		return
	}

	reportID := r.ExternalID
	if reportID == "" {
		reportID = r.ID
	}

	msg := notify.Message{
		DeviceToken: token,
		Title:       "Mise à jour de votre signalement",
		Body:        fmt.Sprintf("Le statut de votre signalement est passé de %q à %q.", oldStatus, newStatus),
		Data: map[string]string{
			"signalementId": reportID,
			"oldStatus":     oldStatus,
			"newStatus":     newStatus,
			"type":          "status_update",
		},
	}
	if err := n.Notifier.Send(ctx, msg); err != nil {
		metrics.Notification(metrics.OutcomeError)
		l.Warn("failed to send status notification", "error", err)
		return
	}

	metrics.Notification(metrics.OutcomeSuccess)
	l.Info("status notification sent", "old_status", oldStatus, "new_status", newStatus)
}

// deviceToken returns "" without error when the user or the field is absent.
func (n *StatusNotifier) deviceToken(ctx context.Context, userID string) (string, error) {
	doc, err := n.Users.Get(ctx, usersCollection, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	token, _ := doc.Fields[deviceTokenKey].(string)
	return token, nil
}
