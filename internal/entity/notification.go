package entity

import (
	"database/sql"

	"github.com/inklore/backend/pkg/enum"
)

type NotificationType string

var (
	LikeNotification       = enum.New(NotificationType("like"))
	CommentNotification    = enum.New(NotificationType("comment"))
	FollowNotification     = enum.New(NotificationType("follow"))
	InviteNotification     = enum.New(NotificationType("invite"))
	NewChapterNotification = enum.New(NotificationType("new_chapter"))
)

// Notification carries at most one subject reference (poem, comment,
// community, or thread).
type Notification struct {
	Base
	Type    NotificationType `gorm:"type:varchar(32)"`
	Content string
	Link    string

	RecipientID string `gorm:"index"`
	Recipient   User   `gorm:"foreignKey:RecipientID"`

	SenderID sql.NullString

	PoemID      sql.NullString
	CommentID   sql.NullString
	CommunityID sql.NullString
	ThreadID    sql.NullString

	IsRead bool `gorm:"default:false"`
}
