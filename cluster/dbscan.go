// Package cluster groups the units of a frame into skirmishes with DBSCAN.
package cluster

import (
	"math"
	"slices"

	"github.com/nstehr/vimy/vimy-tactics/model"
	"github.com/nstehr/vimy/vimy-tactics/spatial"
)

const (
	DefaultEps    = 392
	DefaultMinPts = 4
)

const noise = -1

// Cluster is one group of nearby units of any relation.
type Cluster struct {
	// Units are ordered by x coordinate.
	Units []*model.Unit
	// B is the regression slope through our own units, zero when undefined.
	B float64
}

func (c Cluster) Mine() []*model.Unit {
	return slices.DeleteFunc(slices.Clone(c.Units), func(u *model.Unit) bool { return !u.IsMe() })
}

func (c Cluster) Enemies() []*model.Unit {
	return slices.DeleteFunc(slices.Clone(c.Units), func(u *model.Unit) bool { return !u.IsEnemy() })
}

// DBSCAN labels every indexed unit. Points are visited in id order, which
// makes the partition a function of the unit set alone. Units left as noise
// come back as singleton clusters after the dense ones.
func DBSCAN(idx *spatial.Index, eps, minPts int) []Cluster {
	labels := make(map[int]int, idx.Len())
	next := 0

	for _, u := range idx.All() {
		if _, ok := labels[u.ID]; ok {
			continue
		}
		var neighbours []*model.Unit
		for o := range idx.InRange(u, eps) {
			if o != u {
				neighbours = append(neighbours, o)
			}
		}
		if len(neighbours) < minPts-1 {
			labels[u.ID] = noise
			continue
		}

		label := next
		next++
		labels[u.ID] = label
		for len(neighbours) > 0 {
			q := neighbours[0]
			neighbours = neighbours[1:]
			if l, seen := labels[q.ID]; seen && l != noise {
				continue
			}
			labels[q.ID] = label

			expanded := slices.Collect(idx.InRange(q, eps))
			if len(expanded) >= minPts {
				neighbours = append(neighbours, expanded...)
			}
		}
	}

	clusters := make([]Cluster, next)
	for _, u := range idx.All() {
		l := labels[u.ID]
		if l == noise {
			clusters = append(clusters, Cluster{Units: []*model.Unit{u}})
			continue
		}
		clusters[l].Units = append(clusters[l].Units, u)
	}

	for i := range clusters {
		c := &clusters[i]
		slices.SortStableFunc(c.Units, func(a, b *model.Unit) int { return a.X - b.X })
		c.B = slope(c.Units)
	}
	return clusters
}

// slope fits y = a + Bx through our own units via the Pearson correlation.
func slope(units []*model.Unit) float64 {
	var n, sx, sy, sxy, sx2, sy2 float64
	for _, u := range units {
		if !u.IsMe() {
			continue
		}
		x, y := float64(u.X), float64(u.Y)
		n++
		sx += x
		sy += y
		sxy += x * y
		sx2 += x * x
		sy2 += y * y
	}
	if n == 0 {
		return 0
	}
	ax, ay := sx/n, sy/n
	varX := sx2/n - ax*ax
	varY := sy2/n - ay*ay
	if varX <= 0 || varY <= 0 {
		return 0
	}
	r := (sxy/n - ax*ay) / math.Sqrt(varX*varY)
	return r * math.Sqrt(varY) / math.Sqrt(varX)
}
