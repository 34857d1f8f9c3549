package mesh

import (
	"github.com/iceisfun/tinmesh/quadedge"
	"github.com/iceisfun/tinmesh/types"
)

type config struct {
	mergeRule        types.MergeRule
	edgePoolPageSize int
	seed             int64
	hasSeed          bool

	debugAddVertex   func(types.VertexID, types.Point)
	debugAddEdge     func(types.Edge)
	debugAddTriangle func(types.Triangle)
}

func newDefaultConfig() config {
	return config{
		mergeRule:        types.MergeFirst,
		edgePoolPageSize: quadedge.DefaultPageSize,
	}
}
