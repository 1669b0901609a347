package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/inklore/backend/internal/model"
	"github.com/inklore/backend/pkg/errorx"
	"github.com/inklore/backend/pkg/testutil"
	"github.com/inklore/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestAuthVerifier(t *testing.T) {
	ctx := testutil.MockContext()
	verify := NewAuthVerifier()

	token, err := xcontext.TokenEngine(ctx).Generate("alice", model.AccessToken{ID: "alice", Name: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/getMyNotifications", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authedCtx, err := verify(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "alice", xcontext.RequestUserID(authedCtx))
}

func TestAuthVerifierCookie(t *testing.T) {
	ctx := testutil.MockContext()
	verify := NewAuthVerifier()

	token, err := xcontext.TokenEngine(ctx).Generate("alice", model.AccessToken{ID: "alice", Name: "alice"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/getMyNotifications", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	authedCtx, err := verify(xcontext.WithHTTPRequest(ctx, req))
	require.NoError(t, err)
	require.Equal(t, "alice", xcontext.RequestUserID(authedCtx))
}

func TestAuthVerifierRejectsMissingAndInvalidTokens(t *testing.T) {
	ctx := testutil.MockContext()
	verify := NewAuthVerifier()

	req := httptest.NewRequest(http.MethodGet, "/getMyNotifications", nil)
	_, err := verify(xcontext.WithHTTPRequest(ctx, req))
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	req = httptest.NewRequest(http.MethodGet, "/getMyNotifications", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	_, err = verify(xcontext.WithHTTPRequest(ctx, req))
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}
