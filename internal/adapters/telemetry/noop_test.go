package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seer/internal/adapters/telemetry"
	"go.trai.ch/seer/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	gotCtx, vertex := tel.Record(ctx, "/repo/a.proj.yaml")
	assert.Equal(t, ctx, gotCtx)

	n, err := vertex.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	vertex.Log(domain.LogLevelWarn, "ignored")
	vertex.Complete(errors.New("ignored"))
	require.NoError(t, tel.Close())
}
