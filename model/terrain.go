package model

import "fmt"

// Terrain is the static walkability grid at 8px resolution plus per-tile
// ground height. Altitude is derived: the distance in pixels from a walk cell
// to the nearest unwalkable cell, so open ground has high altitude and chokes
// have low altitude.
type Terrain struct {
	WalkCols int
	WalkRows int
	walkable []bool
	heights  []int
	altitude []int
}

// NewTerrain validates the grids and computes altitude. heights is per 32px
// tile (WalkCols/4 x WalkRows/4) and may be nil for a flat map.
func NewTerrain(cols, rows int, walkable []bool, heights []int) (*Terrain, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("invalid terrain size %dx%d", cols, rows)
	}
	if len(walkable) != cols*rows {
		return nil, fmt.Errorf("walkable grid has %d cells, want %d", len(walkable), cols*rows)
	}
	tiles := (cols / 4) * (rows / 4)
	if heights == nil {
		heights = make([]int, tiles)
	}
	if len(heights) != tiles {
		return nil, fmt.Errorf("height grid has %d tiles, want %d", len(heights), tiles)
	}
	t := &Terrain{WalkCols: cols, WalkRows: rows, walkable: walkable, heights: heights}
	t.computeAltitude()
	return t, nil
}

// OpenTerrain is a flat, fully walkable map of the given walk-cell size.
func OpenTerrain(cols, rows int) *Terrain {
	walkable := make([]bool, cols*rows)
	for i := range walkable {
		walkable[i] = true
	}
	t, err := NewTerrain(cols, rows, walkable, nil)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Terrain) Width() int  { return t.WalkCols * 8 }
func (t *Terrain) Height() int { return t.WalkRows * 8 }

func (t *Terrain) inBounds(w WalkPosition) bool {
	return w.X >= 0 && w.X < t.WalkCols && w.Y >= 0 && w.Y < t.WalkRows
}

// WalkableAt returns false for out-of-bounds cells.
func (t *Terrain) WalkableAt(w WalkPosition) bool {
	if !t.inBounds(w) {
		return false
	}
	return t.walkable[w.Y*t.WalkCols+w.X]
}

func (t *Terrain) IsWalkable(p Position) bool { return t.WalkableAt(p.Walk()) }

// GroundHeight is 0 (low), 1 (high) or 2 (very high). Out of bounds is low ground.
func (t *Terrain) GroundHeight(p Position) int {
	tile := p.Tile()
	cols := t.WalkCols / 4
	if tile.X < 0 || tile.X >= cols || tile.Y < 0 || tile.Y >= t.WalkRows/4 {
		return 0
	}
	return t.heights[tile.Y*cols+tile.X]
}

// Altitude is 0 for unwalkable or out-of-bounds cells.
func (t *Terrain) Altitude(w WalkPosition) int {
	if !t.inBounds(w) {
		return 0
	}
	return t.altitude[w.Y*t.WalkCols+w.X]
}

// computeAltitude runs a multi-source BFS from every unwalkable cell and the
// map border, stepping in 8-connected walk cells.
func (t *Terrain) computeAltitude() {
	n := t.WalkCols * t.WalkRows
	t.altitude = make([]int, n)
	steps := make([]int, n)
	queue := make([]int, 0, n)
	var edge []int
	for i := range steps {
		x, y := i%t.WalkCols, i/t.WalkCols
		border := x == 0 || y == 0 || x == t.WalkCols-1 || y == t.WalkRows-1
		switch {
		case !t.walkable[i]:
			steps[i] = 0
			queue = append(queue, i)
		case border:
			steps[i] = 1
			edge = append(edge, i)
		default:
			steps[i] = -1
		}
	}
	// Sources must be queued in step order for BFS levels to stay monotone.
	queue = append(queue, edge...)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		x, y := i%t.WalkCols, i/t.WalkCols
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= t.WalkCols || ny >= t.WalkRows {
					continue
				}
				j := ny*t.WalkCols + nx
				if steps[j] >= 0 {
					continue
				}
				steps[j] = steps[i] + 1
				queue = append(queue, j)
			}
		}
	}
	for i, s := range steps {
		t.altitude[i] = s * 8
	}
}

// FurthestWalkable walks the line from a to b cell by cell and returns the
// last walkable cell before the first blocked one. ok is false when a itself
// is not walkable.
func (t *Terrain) FurthestWalkable(a, b WalkPosition) (WalkPosition, bool) {
	if !t.WalkableAt(a) {
		return a, false
	}
	last := a
	dx, dy := abs(b.X-a.X), -abs(b.Y-a.Y)
	sx, sy := sign(b.X-a.X), sign(b.Y-a.Y)
	err := dx + dy
	x, y := a.X, a.Y
	for x != b.X || y != b.Y {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		next := WalkPosition{x, y}
		if !t.WalkableAt(next) {
			break
		}
		last = next
	}
	return last, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
