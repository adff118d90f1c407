package ipc

import (
	"fmt"

	"github.com/nstehr/vimy/vimy-tactics/model"
)

// These constants must stay in sync with the bridge's message types.
const (
	TypeHello     = "hello"
	TypeAck       = "ack"
	TypeGameState = "game_state"
	// TypeDraw carries a telemetry.Frame for the bridge to render.
	TypeDraw = "draw"
)

type HelloMessage struct {
	Player  string       `json:"player"`
	Race    string       `json:"race"`
	Map     string       `json:"map"`
	Terrain *TerrainData `json:"terrain,omitempty"`
}

// TerrainData carries the static map from the bridge.
// Optional: without it the core assumes open ground of the game state's map size.
type TerrainData struct {
	WalkCols int `json:"walkCols"`
	WalkRows int `json:"walkRows"`
	// Walkable holds one '1' or '0' per walk cell, row-major.
	Walkable string `json:"walkable"`
	// Heights holds the ground level of every 32px tile, row-major.
	Heights []int `json:"heights,omitempty"`
}

// Terrain decodes the grid.
func (d *TerrainData) Terrain() (*model.Terrain, error) {
	if len(d.Walkable) != d.WalkCols*d.WalkRows {
		return nil, fmt.Errorf("walkable grid has %d cells, want %dx%d", len(d.Walkable), d.WalkCols, d.WalkRows)
	}
	walkable := make([]bool, len(d.Walkable))
	for i := 0; i < len(d.Walkable); i++ {
		switch d.Walkable[i] {
		case '1':
			walkable[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("walkable cell %d: unexpected %q", i, d.Walkable[i])
		}
	}
	return model.NewTerrain(d.WalkCols, d.WalkRows, walkable, d.Heights)
}

type AckMessage struct {
	Status string `json:"status"`
	// Issued is the number of commands sent while handling the message.
	Issued int `json:"issued,omitempty"`
}
