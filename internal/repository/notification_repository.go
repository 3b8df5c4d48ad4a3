package repository

import (
	"context"

	"pawrescue-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository lives outside the unit of work: the notification
// worker writes independently of any request transaction.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// ListUserIDsByRole resolves recipients for role-targeted notifications.
	ListUserIDsByRole(ctx context.Context, roles ...string) ([]uuid.UUID, error)
}
