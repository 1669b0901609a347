package repository

import (
	"context"

	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/pkg/xcontext"
)

type ChatMemberRepository interface {
	Create(ctx context.Context, member *entity.ChatMember) error
	IsMember(ctx context.Context, chatID, userID string) (bool, error)
	GetUserIDsByChatID(ctx context.Context, chatID string) ([]string, error)
}

type chatMemberRepository struct{}

func NewChatMemberRepository() *chatMemberRepository {
	return &chatMemberRepository{}
}

func (r *chatMemberRepository) Create(ctx context.Context, member *entity.ChatMember) error {
	return xcontext.DB(ctx).Create(member).Error
}

func (r *chatMemberRepository) IsMember(ctx context.Context, chatID, userID string) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.ChatMember{}).
		Where("chat_id=? AND user_id=?", chatID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *chatMemberRepository) GetUserIDsByChatID(ctx context.Context, chatID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).Model(&entity.ChatMember{}).
		Where("chat_id=?", chatID).
		Pluck("user_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
