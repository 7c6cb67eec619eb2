package progrock_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"google.golang.org/protobuf/types/known/timestamppb"

	seerprogrock "go.trai.ch/seer/internal/adapters/telemetry/progrock"
)

func TestStatusWriter_PrintsCompletedVerticesOnce(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	w := seerprogrock.NewStatusWriter(buf)

	failure := "boom"
	now := timestamppb.Now()

	require.NoError(t, w.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "/repo/a.proj.yaml"},
			{Id: "2", Name: "/repo/b.proj.yaml", Completed: now},
		},
	}))
	require.NoError(t, w.WriteStatus(&progrock.StatusUpdate{
		Vertexes: []*progrock.Vertex{
			{Id: "1", Name: "/repo/a.proj.yaml", Completed: now, Error: &failure},
			{Id: "2", Name: "/repo/b.proj.yaml", Completed: now},
		},
	}))

	assert.Equal(t, "✓ /repo/b.proj.yaml\n✗ /repo/a.proj.yaml: boom\n", buf.String())
	assert.Equal(t, 2, w.Completed())
	assert.Equal(t, 1, w.Failed())
	require.NoError(t, w.Close())
}
