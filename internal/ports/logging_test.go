package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCorrelationTagsContext(t *testing.T) {
	t.Parallel()

	ctx, id := NewCorrelation(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, CorrelationID(ctx))

	_, other := NewCorrelation(context.Background())
	assert.NotEqual(t, id, other)
}

func TestCorrelationIDMissing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CorrelationID(context.Background()))
	assert.Equal(t, "fixed", CorrelationID(WithCorrelationID(context.Background(), "fixed")))
}
