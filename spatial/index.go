// Package spatial indexes a frame's units in an R-tree for envelope and
// radius queries.
package spatial

import (
	"iter"
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/tidwall/rtree"
)

// Index is built once per frame and read concurrently afterwards.
type Index struct {
	tree  rtree.RTreeG[*model.Unit]
	units []*model.Unit
}

func New(units []*model.Unit) *Index {
	idx := &Index{units: slices.Clone(units)}
	slices.SortStableFunc(idx.units, func(a, b *model.Unit) int { return a.ID - b.ID })
	for _, u := range idx.units {
		lo, hi := bounds(u.Dimensions())
		idx.tree.Insert(lo, hi, u)
	}
	return idx
}

func bounds(r model.Rect) ([2]float64, [2]float64) {
	return [2]float64{float64(r.Min.X), float64(r.Min.Y)}, [2]float64{float64(r.Max.X), float64(r.Max.Y)}
}

// All returns the indexed units ordered by id.
func (idx *Index) All() []*model.Unit { return idx.units }

func (idx *Index) Len() int { return idx.tree.Len() }

// InEnvelope yields every unit whose box intersects r, ordered by id.
func (idx *Index) InEnvelope(r model.Rect) iter.Seq[*model.Unit] {
	return slices.Values(idx.collect(r, nil))
}

// InRadius yields units whose box lies within radius of center.
func (idx *Index) InRadius(center model.Position, radius int) iter.Seq[*model.Unit] {
	r := model.Rect{Min: center, Max: center}.Expand(radius)
	found := idx.collect(r, func(u *model.Unit) bool {
		return u.Dimensions().DistanceSquaredTo(center) < radius*radius
	})
	return slices.Values(found)
}

// InRange yields units within rng of u's box, u included.
func (idx *Index) InRange(u *model.Unit, rng int) iter.Seq[*model.Unit] {
	dims := u.Dimensions()
	center := u.Position()
	found := idx.collect(dims.Expand(rng), func(o *model.Unit) bool {
		return o == u || o.Dimensions().DistanceSquaredTo(center) < rng*rng
	})
	return slices.Values(found)
}

// collect runs an envelope search and sorts by id so callers iterate
// deterministically regardless of tree shape.
func (idx *Index) collect(r model.Rect, keep func(*model.Unit) bool) []*model.Unit {
	var out []*model.Unit
	lo, hi := bounds(r)
	idx.tree.Search(lo, hi, func(_, _ [2]float64, u *model.Unit) bool {
		if keep == nil || keep(u) {
			out = append(out, u)
		}
		return true
	})
	slices.SortFunc(out, func(a, b *model.Unit) int { return a.ID - b.ID })
	return out
}
