package game

import "fmt"

// Tile is one cell of the board. Its identity stays hidden until the tile
// is flipped; a matched tile keeps its face up for the rest of the game.
type Tile struct {
	row, col int
	identity Identity
	revealed bool
}

func (tile *Tile) Row() int {
	return tile.row
}

func (tile *Tile) Col() int {
	return tile.col
}

// Identity returns the tile's face value. Callers outside the package see
// it regardless of revealed state; presenting hidden faces to the player
// is the renderer's concern, not the model's.
func (tile *Tile) Identity() Identity {
	return tile.identity
}

func (tile *Tile) Revealed() bool {
	return tile.revealed
}

func (tile *Tile) String() string {
	face := "hidden"
	if tile.revealed {
		face = tile.identity.String()
	}
	return fmt.Sprintf("Tile(%d, %d, %s)", tile.row, tile.col, face)
}
