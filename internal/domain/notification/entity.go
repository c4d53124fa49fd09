package notification

import (
	"context"
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Kind selects the icon the client renders.
type Kind string

const (
	KindUser      Kind = "user"
	KindBriefcase Kind = "briefcase"
	KindLock      Kind = "lock"
	KindAlert     Kind = "alert"
)

type Notification struct {
	ID        string
	UserID    string
	Title     string
	Message   string
	Kind      Kind
	AvatarURL *string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}

type NotificationRepository interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id string, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

// Service queues notifications for storage and live SSE delivery.
type Service interface {
	Queue(ctx context.Context, req QueueRequest) error
	ListMine(ctx context.Context, limit int) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int64, error)
}

type QueueRequest struct {
	UserID    string
	Title     string
	Message   string
	Kind      Kind
	AvatarURL *string
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Kind      Kind    `json:"kind"`
	AvatarURL *string `json:"avatarUrl"`
	IsRead    bool    `json:"isRead"`
	Time      string  `json:"time"`
}

func NewNotificationResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Kind:      n.Kind,
		AvatarURL: n.AvatarURL,
		IsRead:    n.IsRead,
		Time:      n.CreatedAt.Format(time.RFC3339),
	}
}
