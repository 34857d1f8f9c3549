package constraint

import (
	"math"

	"github.com/iceisfun/tinmesh/types"
)

// Densify walks poly (an open polyline, not closed) and inserts
// equally spaced synthetic midpoints wherever consecutive spacing
// exceeds threshold, so every returned consecutive pair is no farther
// apart than threshold. Z is linearly interpolated along each original
// segment. Endpoints are always preserved verbatim. This operates on
// plain vertex data and needs no mesh.
func Densify(poly []types.Vertex, threshold float64) []types.Vertex {
	if len(poly) < 2 || threshold <= 0 {
		out := make([]types.Vertex, len(poly))
		copy(out, poly)
		return out
	}

	out := []types.Vertex{poly[0]}
	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		dist := math.Hypot(b.X-a.X, b.Y-a.Y)
		steps := int(math.Ceil(dist / threshold))
		if steps < 1 {
			steps = 1
		}
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, types.Vertex{
				X:     a.X + t*(b.X-a.X),
				Y:     a.Y + t*(b.Y-a.Y),
				Z:     a.Z + t*(b.Z-a.Z),
				ID:    types.NullVertex,
				Flags: types.FlagSynthetic,
			})
		}
		out = append(out, b)
	}
	return out
}
