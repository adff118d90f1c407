package model

import (
	"container/heap"
	"sync"
)

// Paths answers ground-path queries. Flyers never need it.
type Paths interface {
	// Distance is the ground path length in pixels; ok is false when unreachable.
	Distance(from, to Position) (int, bool)
	// Waypoints lists the turning points of the path, ending with to.
	Waypoints(from, to Position) []Position
}

// DirectPaths pretends every pair of points is connected by a straight line.
type DirectPaths struct{}

func (DirectPaths) Distance(from, to Position) (int, bool) { return int(from.Distance(to)), true }
func (DirectPaths) Waypoints(_, to Position) []Position     { return []Position{to} }

const (
	straightCost = 32
	diagonalCost = 45
	maxFields    = 64
)

// TilePaths routes over 32px tiles using a distance field per destination tile.
// Fields are cached; the cache is dropped wholesale once it grows past maxFields.
type TilePaths struct {
	terrain *Terrain
	cols    int
	rows    int

	mu     sync.Mutex
	fields map[TilePosition][]int32
}

func NewTilePaths(t *Terrain) *TilePaths {
	return &TilePaths{
		terrain: t,
		cols:    t.WalkCols / 4,
		rows:    t.WalkRows / 4,
		fields:  make(map[TilePosition][]int32),
	}
}

func (p *TilePaths) tileWalkable(x, y int) bool {
	if x < 0 || y < 0 || x >= p.cols || y >= p.rows {
		return false
	}
	return p.terrain.WalkableAt(WalkPosition{x*4 + 2, y*4 + 2})
}

func (p *TilePaths) Distance(from, to Position) (int, bool) {
	field := p.field(to.Tile())
	ft := from.Tile()
	if field == nil || !p.tileWalkable(ft.X, ft.Y) {
		return 0, false
	}
	d := field[ft.Y*p.cols+ft.X]
	if d < 0 {
		return 0, false
	}
	return int(d), true
}

func (p *TilePaths) Waypoints(from, to Position) []Position {
	field := p.field(to.Tile())
	cur := from.Tile()
	if field == nil || !p.tileWalkable(cur.X, cur.Y) || field[cur.Y*p.cols+cur.X] < 0 {
		return []Position{to}
	}
	var out []Position
	lastDir := TilePosition{}
	for field[cur.Y*p.cols+cur.X] > 0 {
		best, bestD := cur, field[cur.Y*p.cols+cur.X]
		for _, n := range p.neighbours(cur) {
			if d := field[n.Y*p.cols+n.X]; d >= 0 && d < bestD {
				best, bestD = n, d
			}
		}
		if best == cur {
			break
		}
		dir := TilePosition{best.X - cur.X, best.Y - cur.Y}
		if lastDir != (TilePosition{}) && dir != lastDir {
			out = append(out, cur.Center())
		}
		lastDir = dir
		cur = best
	}
	return append(out, to)
}

func (p *TilePaths) neighbours(t TilePosition) []TilePosition {
	out := make([]TilePosition, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !p.tileWalkable(t.X+dx, t.Y+dy) {
				continue
			}
			if dx != 0 && dy != 0 && (!p.tileWalkable(t.X+dx, t.Y) || !p.tileWalkable(t.X, t.Y+dy)) {
				continue
			}
			out = append(out, TilePosition{t.X + dx, t.Y + dy})
		}
	}
	return out
}

func (p *TilePaths) field(target TilePosition) []int32 {
	if !p.tileWalkable(target.X, target.Y) {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.fields[target]; ok {
		return f
	}
	if len(p.fields) >= maxFields {
		clear(p.fields)
	}
	f := p.dijkstra(target)
	p.fields[target] = f
	return f
}

func (p *TilePaths) dijkstra(target TilePosition) []int32 {
	field := make([]int32, p.cols*p.rows)
	for i := range field {
		field[i] = -1
	}
	field[target.Y*p.cols+target.X] = 0
	q := &tileQueue{{tile: target}}
	for q.Len() > 0 {
		item := heap.Pop(q).(tileItem)
		if item.dist > field[item.tile.Y*p.cols+item.tile.X] {
			continue
		}
		for _, n := range p.neighbours(item.tile) {
			cost := int32(straightCost)
			if n.X != item.tile.X && n.Y != item.tile.Y {
				cost = diagonalCost
			}
			nd := item.dist + cost
			idx := n.Y*p.cols + n.X
			if field[idx] < 0 || nd < field[idx] {
				field[idx] = nd
				heap.Push(q, tileItem{tile: n, dist: nd})
			}
		}
	}
	return field
}

type tileItem struct {
	tile TilePosition
	dist int32
}

type tileQueue []tileItem

func (q tileQueue) Len() int           { return len(q) }
func (q tileQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q tileQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *tileQueue) Push(x any)        { *q = append(*q, x.(tileItem)) }
func (q *tileQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}
