package domain

import (
	"database/sql"

	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/internal/model"
)

func convertNotification(notification *entity.Notification) model.Notification {
	return model.Notification{
		ID:          notification.ID,
		Type:        string(notification.Type),
		Content:     notification.Content,
		Link:        notification.Link,
		RecipientID: notification.RecipientID,
		SenderID:    notification.SenderID.String,
		PoemID:      notification.PoemID.String,
		CommentID:   notification.CommentID.String,
		CommunityID: notification.CommunityID.String,
		ThreadID:    notification.ThreadID.String,
		IsRead:      notification.IsRead,
		CreatedAt:   notification.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
