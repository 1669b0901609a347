package realtime

import (
	"encoding/json"
	"testing"

	"github.com/inklore/backend/internal/repository"
	"github.com/inklore/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestChatRouterFansOutToMembersExceptSender(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.NewUser(ctx, "alice")
	testutil.NewUser(ctx, "bob")
	testutil.NewUser(ctx, "carol")
	testutil.NewChat(ctx, "chat1", "alice", "bob", "carol")

	registry := NewSessionRegistry()
	sender := &fakeTransport{}
	bob := &fakeTransport{}
	carol := &fakeTransport{}
	registry.Register(ctx, NewConnection("alice", sender))
	registry.Register(ctx, NewConnection("bob", bob))
	registry.Register(ctx, NewConnection("carol", carol))

	router := NewChatRouter(repository.NewChatMemberRepository(), registry)
	router.Route(ctx, "alice", []byte(`{"o":"new_message","d":{"chat_id":"chat1","content":"hi"}}`))

	require.Equal(t, 0, sender.writeCount())
	require.Equal(t, 1, bob.writeCount())
	require.Equal(t, 1, carol.writeCount())
}

func TestChatRouterStampsSenderAndMessageID(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.NewUser(ctx, "alice")
	testutil.NewUser(ctx, "bob")
	testutil.NewChat(ctx, "chat1", "alice", "bob")

	registry := NewSessionRegistry()
	bob := &fakeTransport{}
	registry.Register(ctx, NewConnection("bob", bob))

	router := NewChatRouter(repository.NewChatMemberRepository(), registry)

	// A forged sender id never survives routing.
	router.Route(ctx, "alice", []byte(`{"o":"new_message","d":{"chat_id":"chat1","sender_id":"bob","content":"hi"}}`))
	require.Equal(t, 1, bob.writeCount())

	var frame struct {
		Op   string         `json:"o"`
		Data map[string]any `json:"d"`
	}
	require.NoError(t, json.Unmarshal(bob.writes[0], &frame))
	require.Equal(t, "new_message", frame.Op)
	require.Equal(t, "alice", frame.Data["sender_id"])
	require.Equal(t, "hi", frame.Data["content"])
	require.NotZero(t, frame.Data["id"])
}

func TestChatRouterDropsNonMemberSilently(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.NewUser(ctx, "alice")
	testutil.NewUser(ctx, "bob")
	testutil.NewUser(ctx, "mallory")
	testutil.NewChat(ctx, "chat1", "alice", "bob")

	registry := NewSessionRegistry()
	alice := &fakeTransport{}
	bob := &fakeTransport{}
	mallory := &fakeTransport{}
	registry.Register(ctx, NewConnection("alice", alice))
	registry.Register(ctx, NewConnection("bob", bob))
	registry.Register(ctx, NewConnection("mallory", mallory))

	router := NewChatRouter(repository.NewChatMemberRepository(), registry)
	router.Route(ctx, "mallory", []byte(`{"o":"new_message","d":{"chat_id":"chat1","content":"hi"}}`))

	// Nothing is delivered and nothing is echoed back.
	require.Equal(t, 0, alice.writeCount())
	require.Equal(t, 0, bob.writeCount())
	require.Equal(t, 0, mallory.writeCount())
}

func TestChatRouterDropsMalformedFrames(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.NewUser(ctx, "alice")
	testutil.NewUser(ctx, "bob")
	testutil.NewChat(ctx, "chat1", "alice", "bob")

	registry := NewSessionRegistry()
	bob := &fakeTransport{}
	registry.Register(ctx, NewConnection("bob", bob))

	router := NewChatRouter(repository.NewChatMemberRepository(), registry)

	router.Route(ctx, "alice", []byte(`not json`))
	router.Route(ctx, "alice", []byte(`{"o":"shutdown","d":{"chat_id":"chat1"}}`))
	router.Route(ctx, "alice", []byte(`{"o":"typing","d":{}}`))

	require.Equal(t, 0, bob.writeCount())
}

func TestChatRouterDeliversToOnlineMembersOnly(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.NewUser(ctx, "alice")
	testutil.NewUser(ctx, "bob")
	testutil.NewUser(ctx, "carol")
	testutil.NewChat(ctx, "chat1", "alice", "bob", "carol")

	registry := NewSessionRegistry()
	bob := &fakeTransport{}
	registry.Register(ctx, NewConnection("bob", bob))

	router := NewChatRouter(repository.NewChatMemberRepository(), registry)
	router.Route(ctx, "alice", []byte(`{"o":"typing","d":{"chat_id":"chat1"}}`))

	// Carol is offline; delivery simply skips her.
	require.Equal(t, 1, bob.writeCount())
}
