package services

import (
	"context"
	"fmt"

	"github.com/Govind-619/Plug233/models"
	"github.com/Govind-619/Plug233/repository"
	"github.com/Govind-619/Plug233/utils"
)

// NotificationService writes in-app notifications and mirrors them by email
// when a mailer is configured.
type NotificationService struct {
	repos  *repository.Repositories
	mailer Mailer
}

func NewNotificationService(repos *repository.Repositories, mailer Mailer) *NotificationService {
	return &NotificationService{repos: repos, mailer: mailer}
}

// Record inserts a notification through repos, which may be bound to a
// transaction.
func (s *NotificationService) Record(ctx context.Context, repos *repository.Repositories, userID string, kind models.NotificationType, message string) (*models.Notification, error) {
	n := &models.Notification{UserID: userID, Type: kind, Message: message}
	if err := repos.Notifications.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("record notification: %w", err)
	}
	return n, nil
}

// Deliver emails already-committed notifications. Failures are logged only.
func (s *NotificationService) Deliver(ctx context.Context, notes ...*models.Notification) {
	if s.mailer == nil {
		return
	}
	for _, n := range notes {
		if n == nil {
			continue
		}
		profile, err := s.repos.Profiles.Get(ctx, n.UserID)
		if err != nil || profile.Email == "" {
			utils.LogDebug("No email on file for notification %s", n.ID)
			continue
		}
		body := utils.NotificationEmailBody(profile.DisplayName(), n.Message)
		if err := s.mailer.Send(profile.Email, "Update from 233Plug", body); err != nil {
			utils.LogError("Failed to email notification %s to %s: %v", n.ID, profile.Email, err)
		}
	}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.repos.Notifications.ListByUser(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repos.Notifications.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.repos.Notifications.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repos.Notifications.MarkAllRead(ctx, userID)
}
