package entity

import (
	"context"

	"github.com/inklore/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Chat{},
		&ChatMember{},
		&Notification{},
	)
}
