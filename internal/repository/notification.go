package repository

import (
	"context"

	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/pkg/xcontext"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	GetListByRecipientID(ctx context.Context, recipientID string, offset, limit int) ([]entity.Notification, error)
	CountByRecipientID(ctx context.Context, recipientID string) (int64, error)

	// MarkRead and Delete scope the mutation by owner; they report the
	// number of affected rows so the caller can collapse "not found" and
	// "not yours" into a single outcome.
	MarkRead(ctx context.Context, id, recipientID string) (int64, error)
	MarkAllRead(ctx context.Context, recipientID string) error
	Delete(ctx context.Context, id, recipientID string) (int64, error)
}

type notificationRepository struct{}

func NewNotificationRepository() *notificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return xcontext.DB(ctx).Create(notification).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var result entity.Notification
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *notificationRepository) GetListByRecipientID(
	ctx context.Context, recipientID string, offset, limit int,
) ([]entity.Notification, error) {
	var result []entity.Notification
	err := xcontext.DB(ctx).
		Where("recipient_id=?", recipientID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *notificationRepository) CountByRecipientID(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("recipient_id=?", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, recipientID string) (int64, error) {
	tx := xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("id=? AND recipient_id=?", id, recipientID).
		Update("is_read", true)

	return tx.RowsAffected, tx.Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	return xcontext.DB(ctx).Model(&entity.Notification{}).
		Where("recipient_id=? AND is_read=?", recipientID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id, recipientID string) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("id=? AND recipient_id=?", id, recipientID).
		Delete(&entity.Notification{})

	return tx.RowsAffected, tx.Error
}
