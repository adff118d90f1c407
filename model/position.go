package model

import "math"

// Position is a map coordinate in pixels.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pos(x, y int) Position { return Position{X: x, Y: y} }

func (p Position) Add(o Position) Position { return Position{p.X + o.X, p.Y + o.Y} }
func (p Position) Sub(o Position) Position { return Position{p.X - o.X, p.Y - o.Y} }

func (p Position) DistanceSquared(o Position) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

func (p Position) Distance(o Position) float64 {
	return math.Sqrt(float64(p.DistanceSquared(o)))
}

// Walk returns the 8px walk cell containing p.
func (p Position) Walk() WalkPosition { return WalkPosition{floorDiv(p.X, 8), floorDiv(p.Y, 8)} }

// Tile returns the 32px build tile containing p.
func (p Position) Tile() TilePosition { return TilePosition{floorDiv(p.X, 32), floorDiv(p.Y, 32)} }

// WalkPosition addresses an 8x8 pixel walkability cell.
type WalkPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Center returns the pixel center of the cell.
func (w WalkPosition) Center() Position { return Position{w.X*8 + 4, w.Y*8 + 4} }

func (w WalkPosition) DistanceSquared(o WalkPosition) int {
	dx, dy := w.X-o.X, w.Y-o.Y
	return dx*dx + dy*dy
}

// TilePosition addresses a 32x32 pixel build tile.
type TilePosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (t TilePosition) Center() Position { return Position{t.X*32 + 16, t.Y*32 + 16} }

// Rect is an inclusive pixel rectangle.
type Rect struct {
	Min Position
	Max Position
}

// Expand grows the rectangle by n pixels on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{Min: Position{r.Min.X - n, r.Min.Y - n}, Max: Position{r.Max.X + n, r.Max.Y + n}}
}

func (r Rect) Contains(p Position) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// DistanceSquaredTo is zero for points inside the rectangle.
func (r Rect) DistanceSquaredTo(p Position) int {
	dx := max(r.Min.X-p.X, 0, p.X-r.Max.X)
	dy := max(r.Min.Y-p.Y, 0, p.Y-r.Max.Y)
	return dx*dx + dy*dy
}

// EdgeDistance is the pixel gap between two rectangles, zero when they touch or overlap.
func (r Rect) EdgeDistance(o Rect) int {
	dx := max(o.Min.X-r.Max.X-1, 0, r.Min.X-o.Max.X-1)
	dy := max(o.Min.Y-r.Max.Y-1, 0, r.Min.Y-o.Max.Y-1)
	return int(math.Sqrt(float64(dx*dx + dy*dy)))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
