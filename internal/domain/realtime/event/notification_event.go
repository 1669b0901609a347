package event

import "github.com/inklore/backend/internal/model"

const NewNotificationOp = "new_notification"

// NEW NOTIFICATION EVENT
type NotificationCreatedEvent struct {
	Notification model.Notification `json:"notification"`
}

func (*NotificationCreatedEvent) Op() string {
	return NewNotificationOp
}
