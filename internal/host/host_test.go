//go:build windows

package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateRegistersUnderCallingThread(t *testing.T) {
	ctx := Create(4, 4)
	require.NotNil(t, ctx)
	require.Same(t, ctx, Lookup())
	Delete(ctx)
	require.Nil(t, Lookup())
}

func TestLookupWithoutCreateIsNil(t *testing.T) {
	require.Nil(t, Lookup())
}
