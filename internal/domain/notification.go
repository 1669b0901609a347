package domain

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/inklore/backend/internal/client"
	"github.com/inklore/backend/internal/domain/realtime/event"
	"github.com/inklore/backend/internal/entity"
	"github.com/inklore/backend/internal/model"
	"github.com/inklore/backend/internal/repository"
	"github.com/inklore/backend/pkg/enum"
	"github.com/inklore/backend/pkg/errorx"
	"github.com/inklore/backend/pkg/xcontext"
)

// LiveSender pushes a payload to a user's live connection if there is one.
// The session registry satisfies it.
type LiveSender interface {
	SendToUser(ctx context.Context, userID string, payload []byte) bool
}

type NotificationDomain interface {
	Create(context.Context, *model.CreateNotificationRequest) (*model.CreateNotificationResponse, error)
	GetMyList(context.Context, *model.GetMyNotificationsRequest) (*model.GetMyNotificationsResponse, error)
	Read(context.Context, *model.ReadNotificationRequest) (*model.ReadNotificationResponse, error)
	ReadAll(context.Context, *model.ReadAllNotificationsRequest) (*model.ReadAllNotificationsResponse, error)
	Delete(context.Context, *model.DeleteNotificationRequest) (*model.DeleteNotificationResponse, error)
}

type notificationDomain struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	liveSender       LiveSender
	emailCaller      client.EmailCaller
	validate         *validator.Validate
}

func NewNotificationDomain(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	liveSender LiveSender,
	emailCaller client.EmailCaller,
) *notificationDomain {
	return &notificationDomain{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		liveSender:       liveSender,
		emailCaller:      emailCaller,
		validate:         validator.New(),
	}
}

// Create persists the notification, then fans it out to the recipient's live
// connection and email address. Only the persistence step can fail the call;
// both delivery channels are best-effort.
func (d *notificationDomain) Create(
	ctx context.Context, req *model.CreateNotificationRequest,
) (*model.CreateNotificationResponse, error) {
	if err := d.validate.Struct(req); err != nil {
		xcontext.Logger(ctx).Debugf("Invalid create notification request: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Require type, content, and recipient")
	}

	notificationType, err := enum.ToEnum[entity.NotificationType](req.Type)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid notification type %s", req.Type)
	}

	subjects := 0
	for _, ref := range []string{req.PoemID, req.CommentID, req.CommunityID, req.ThreadID} {
		if ref != "" {
			subjects++
		}
	}
	if subjects > 1 {
		return nil, errorx.New(errorx.BadRequest, "Require at most one subject reference")
	}

	notification := &entity.Notification{
		Base:        entity.Base{ID: uuid.NewString()},
		Type:        notificationType,
		Content:     req.Content,
		Link:        req.Link,
		RecipientID: req.RecipientID,
		SenderID:    nullString(req.SenderID),
		PoemID:      nullString(req.PoemID),
		CommentID:   nullString(req.CommentID),
		CommunityID: nullString(req.CommunityID),
		ThreadID:    nullString(req.ThreadID),
	}

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertNotification(notification)
	d.pushLive(ctx, resp)
	d.sendEmail(ctx, notification)

	return &model.CreateNotificationResponse{Notification: resp}, nil
}

func (d *notificationDomain) pushLive(ctx context.Context, notification model.Notification) {
	ev := event.New(&event.NotificationCreatedEvent{Notification: notification})
	payload, err := json.Marshal(ev)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot marshal notification event: %v", err)
		return
	}

	if !d.liveSender.SendToUser(ctx, notification.RecipientID, payload) {
		xcontext.Logger(ctx).Debugf("User %s is offline, skipped live push", notification.RecipientID)
	}
}

func (d *notificationDomain) sendEmail(ctx context.Context, notification *entity.Notification) {
	recipient, err := d.userRepo.GetByID(ctx, notification.RecipientID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get recipient %s: %v", notification.RecipientID, err)
		return
	}

	if !recipient.Email.Valid {
		xcontext.Logger(ctx).Debugf("User %s has no email address", notification.RecipientID)
		return
	}

	err = d.emailCaller.SendNotificationEmail(
		ctx, recipient.Email.String, notification.Content, notification.Link)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot send notification email to %s: %v",
			notification.RecipientID, err)
	}
}

func (d *notificationDomain) GetMyList(
	ctx context.Context, req *model.GetMyNotificationsRequest,
) (*model.GetMyNotificationsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	cfg := xcontext.Configs(ctx).ApiServer

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = cfg.DefaultLimit
	}

	if pageSize <= 0 || pageSize > cfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid page size %d", req.PageSize)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	total, err := d.notificationRepo.CountByRecipientID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count notifications: %v", err)
		return nil, errorx.Unknown
	}

	notifications, err := d.notificationRepo.GetListByRecipientID(
		ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
		return nil, errorx.Unknown
	}

	result := make([]model.Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, convertNotification(&notifications[i]))
	}

	pages := (total + int64(pageSize) - 1) / int64(pageSize)

	return &model.GetMyNotificationsResponse{
		Notifications: result,
		Total:         total,
		Pages:         pages,
		CurrentPage:   page,
	}, nil
}

func (d *notificationDomain) Read(
	ctx context.Context, req *model.ReadNotificationRequest,
) (*model.ReadNotificationResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	rows, err := d.notificationRepo.MarkRead(ctx, req.ID, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notification as read: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found notification")
	}

	return &model.ReadNotificationResponse{}, nil
}

func (d *notificationDomain) ReadAll(
	ctx context.Context, req *model.ReadAllNotificationsRequest,
) (*model.ReadAllNotificationsResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	if err := d.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot mark notifications as read: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ReadAllNotificationsResponse{}, nil
}

func (d *notificationDomain) Delete(
	ctx context.Context, req *model.DeleteNotificationRequest,
) (*model.DeleteNotificationResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}

	rows, err := d.notificationRepo.Delete(ctx, req.ID, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete notification: %v", err)
		return nil, errorx.Unknown
	}

	if rows == 0 {
		return nil, errorx.New(errorx.NotFound, "Not found notification")
	}

	return &model.DeleteNotificationResponse{}, nil
}
