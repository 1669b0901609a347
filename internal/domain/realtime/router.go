package realtime

import (
	"context"
	"encoding/json"

	"github.com/inklore/backend/internal/domain/realtime/event"
	"github.com/inklore/backend/internal/repository"
	"github.com/inklore/backend/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

// ChatRouter re-broadcasts inbound chat events to the other live members of
// the target chat. Events from non-members are dropped without any reply so
// membership cannot be probed through error responses.
type ChatRouter struct {
	chatMemberRepo repository.ChatMemberRepository
	registry       *SessionRegistry
}

func NewChatRouter(chatMemberRepo repository.ChatMemberRepository, registry *SessionRegistry) *ChatRouter {
	return &ChatRouter{
		chatMemberRepo: chatMemberRepo,
		registry:       registry,
	}
}

func (r *ChatRouter) Route(ctx context.Context, senderID string, raw []byte) {
	var req event.EventRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot unmarshal event from user %s: %v", senderID, err)
		return
	}

	switch req.Op {
	case event.NewMessageOp, event.TypingOp, event.ReadReceiptOp:
	default:
		xcontext.Logger(ctx).Debugf("Dropped event with unknown op %q from user %s", req.Op, senderID)
		return
	}

	var ref struct {
		ChatID string `mapstructure:"chat_id"`
	}
	if err := mapstructure.Decode(req.Data, &ref); err != nil || ref.ChatID == "" {
		xcontext.Logger(ctx).Debugf("Dropped %s event without chat id from user %s", req.Op, senderID)
		return
	}

	isMember, err := r.chatMemberRepo.IsMember(ctx, ref.ChatID, senderID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check membership of chat %s: %v", ref.ChatID, err)
		return
	}

	if !isMember {
		xcontext.Logger(ctx).Debugf("User %s is not a member of chat %s", senderID, ref.ChatID)
		return
	}

	// The sender identity always comes from the authenticated connection,
	// never from the frame; new messages also get a server-side id.
	if data, ok := req.Data.(map[string]any); ok {
		data["sender_id"] = senderID
		if req.Op == event.NewMessageOp {
			data["id"] = xcontext.SnowFlake(ctx).Generate().Int64()
		}
	}

	members, err := r.chatMemberRepo.GetUserIDsByChatID(ctx, ref.ChatID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get members of chat %s: %v", ref.ChatID, err)
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal %s event: %v", req.Op, err)
		return
	}

	for _, memberID := range members {
		if memberID == senderID {
			continue
		}

		r.registry.SendToUser(ctx, memberID, payload)
	}
}
