package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iceisfun/tinmesh/mesh"
)

func TestCheckPassesOnUnitSquare(t *testing.T) {
	m := mesh.NewMesh(1.0)
	pts := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, p := range pts {
		_, _, err := m.AddVertex(p[0], p[1], 0)
		require.NoError(t, err)
	}

	r := Check(m)
	assert.True(t, r.OK, "detail: %s", r.Detail)
}

func TestCheckFailsBeforeBootstrap(t *testing.T) {
	m := mesh.NewMesh(1.0)
	r := Check(m)
	assert.False(t, r.OK, "expected integrity check to fail on an unbootstrapped mesh")
}

func TestCheckPassesAfterScatteredInsertion(t *testing.T) {
	m := mesh.NewMesh(1.0)
	pts := [][2]float64{
		{0, 0}, {4, 0}, {4, 4}, {0, 4},
		{2, 2}, {1, 3}, {3, 1}, {0.5, 0.5},
	}
	for _, p := range pts {
		_, _, err := m.AddVertex(p[0], p[1], 0)
		require.NoError(t, err)
	}

	r := Check(m)
	assert.True(t, r.OK, "detail: %s", r.Detail)

	stats := m.Stats()
	assert.Greater(t, stats.Triangles, 0)
	assert.Equal(t, len(pts), stats.Vertices)
}
