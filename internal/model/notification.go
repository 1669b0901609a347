package model

import "time"

type Notification struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Link        string    `json:"link,omitempty"`
	RecipientID string    `json:"recipient_id"`
	SenderID    string    `json:"sender_id,omitempty"`
	PoemID      string    `json:"poem_id,omitempty"`
	CommentID   string    `json:"comment_id,omitempty"`
	CommunityID string    `json:"community_id,omitempty"`
	ThreadID    string    `json:"thread_id,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateNotificationRequest struct {
	Type        string `json:"type" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Link        string `json:"link"`
	RecipientID string `json:"recipient_id" validate:"required"`
	SenderID    string `json:"sender_id"`
	PoemID      string `json:"poem_id"`
	CommentID   string `json:"comment_id"`
	CommunityID string `json:"community_id"`
	ThreadID    string `json:"thread_id"`
}

type CreateNotificationResponse struct {
	Notification Notification `json:"notification"`
}

type GetMyNotificationsRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type GetMyNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Total         int64          `json:"total"`
	Pages         int64          `json:"pages"`
	CurrentPage   int            `json:"current_page"`
}

type ReadNotificationRequest struct {
	ID string `json:"id"`
}

type ReadNotificationResponse struct{}

type ReadAllNotificationsRequest struct{}

type ReadAllNotificationsResponse struct{}

type DeleteNotificationRequest struct {
	ID string `json:"id"`
}

type DeleteNotificationResponse struct{}
