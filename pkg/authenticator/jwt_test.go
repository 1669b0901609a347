package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type tokenObject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestTokenEngine(t *testing.T) {
	engine := NewTokenEngine[tokenObject]("secret", time.Minute)

	token, err := engine.Generate("user1", tokenObject{ID: "user1", Name: "foo"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
	require.Equal(t, "foo", obj.Name)
}

func TestTokenEngineInvalidSecret(t *testing.T) {
	engine := NewTokenEngine[tokenObject]("secret", time.Minute)
	another := NewTokenEngine[tokenObject]("another-secret", time.Minute)

	token, err := engine.Generate("user1", tokenObject{ID: "user1"})
	require.NoError(t, err)

	_, err = another.Verify(token)
	require.Error(t, err)
}
