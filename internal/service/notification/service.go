package notification

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/auth"
	"github.com/talentra-hq/hrms-backend-go/internal/domain/notification"
	"github.com/talentra-hq/hrms-backend-go/internal/pkg/sse"
)

const defaultListLimit = 50

type NotificationServiceImpl struct {
	notification.NotificationRepository
	hub *sse.Hub
}

func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		NotificationRepository: repo,
		hub:                    hub,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

// Queue implements notification.Service. The notification is stored first,
// then pushed to any open streams of the recipient.
func (s *NotificationServiceImpl) Queue(ctx context.Context, req notification.QueueRequest) error {
	created, err := s.NotificationRepository.Create(ctx, notification.Notification{
		UserID:    req.UserID,
		Title:     req.Title,
		Message:   req.Message,
		Kind:      req.Kind,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Publish(req.UserID, sse.Event{
			UserID: req.UserID,
			Event:  "notification",
			Data:   notification.NewNotificationResponse(created),
		})
	}

	return nil
}

// ListMine implements notification.Service.
func (s *NotificationServiceImpl) ListMine(ctx context.Context, limit int) ([]notification.NotificationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > 200 {
		limit = defaultListLimit
	}

	items, err := s.NotificationRepository.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, notification.NewNotificationResponse(n))
	}

	return resp, nil
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.NotificationRepository.MarkRead(ctx, id, userID)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.NotificationRepository.MarkAllRead(ctx, userID)
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context) (int64, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return s.NotificationRepository.CountUnread(ctx, userID)
}
