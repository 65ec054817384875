package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKV_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := NewKV()

	_, found, err := s.Load(ctx, "pets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "pets", `[{"id":"p1"}]`))
	require.NoError(t, s.Save(ctx, "pets", `[{"id":"p2"}]`))

	v, found, err := s.Load(ctx, "pets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"p2"}]`, v)

	assert.Error(t, s.Save(ctx, "  ", "x"))
}
