package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fruit string

var (
	apple  = New(fruit("apple"))
	banana = New(fruit("banana"))
)

func TestToEnum(t *testing.T) {
	v, err := ToEnum[fruit]("apple")
	require.NoError(t, err)
	require.Equal(t, apple, v)

	v, err = ToEnum[fruit]("banana")
	require.NoError(t, err)
	require.Equal(t, banana, v)

	_, err = ToEnum[fruit]("durian")
	require.Error(t, err)
}

func TestToEnumUnregisteredType(t *testing.T) {
	type vegetable string
	_, err := ToEnum[vegetable]("carrot")
	require.Error(t, err)
}
