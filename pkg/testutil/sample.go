package testutil

import (
	"context"
	"database/sql"

	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/internal/repository"
	"github.com/inklore/backend/pkg/xcontext"
)

// NewUser creates a user with a predictable email address derived from id.
func NewUser(ctx context.Context, id string) entity.User {
	user := entity.User{
		Base:  entity.Base{ID: id},
		Name:  id,
		Email: sql.NullString{String: id + "@example.com", Valid: true},
	}

	if err := repository.NewUserRepository().Create(ctx, &user); err != nil {
		panic(err)
	}

	return user
}

// NewChat creates a chat and memberships for every given user id.
func NewChat(ctx context.Context, id string, memberIDs ...string) entity.Chat {
	chat := entity.Chat{Base: entity.Base{ID: id}, Name: id}
	if err := xcontext.DB(ctx).Create(&chat).Error; err != nil {
		panic(err)
	}

	chatMemberRepo := repository.NewChatMemberRepository()
	for _, memberID := range memberIDs {
		err := chatMemberRepo.Create(ctx, &entity.ChatMember{ChatID: id, UserID: memberID})
		if err != nil {
			panic(err)
		}
	}

	return chat
}
