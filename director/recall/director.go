package recall

import (
	"math/rand"
	"time"

	"github.com/lysseus/memory/game"
)

// Director plays concentration the way a player with perfect recall would:
// every face it has seen stays remembered, a known pair is played as soon
// as both halves are face-down, and probes prefer tiles it has never seen.
//
// Mismatches are where it learns. It memorizes both faces of a mismatched
// pair while they wait to flip back, so every wasted turn still narrows
// the board.
type Director struct {
	game.BaseDirector

	// Seed fixes the probe order; 0 draws from the clock.
	Seed int64

	board  *game.Board
	memory map[cell]game.Identity
	rand   *rand.Rand
}

type cell struct {
	row, col int
}

func (director *Director) Init(board *game.Board) {
	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	director.board = board
	director.memory = make(map[cell]game.Identity)
	director.rand = rand.New(rand.NewSource(seed))
}

func (director *Director) Act(actions chan<- game.CellAction) {
	director.observe()

	switch director.board.Phase() {
	case game.TurnIdle:
		if first, second, known := director.knownPair(); known {
			actions <- game.CellAction{Row: first.row, Col: first.col}
			actions <- game.CellAction{Row: second.row, Col: second.col}
			return
		}
		if probe, ok := director.probe(); ok {
			actions <- game.CellAction{Row: probe.row, Col: probe.col}
		}

	case game.TurnOneRevealed:
		first, ok := director.board.PendingFirst()
		if !ok {
			return
		}
		if partner, known := director.partner(first); known {
			actions <- game.CellAction{Row: partner.row, Col: partner.col}
			return
		}
		if probe, ok := director.probe(); ok {
			actions <- game.CellAction{Row: probe.row, Col: probe.col}
		}
	}
}

// observe memorizes every face currently turned up, including a mismatched
// pair waiting to flip back.
func (director *Director) observe() {
	for row := 0; row < director.board.Rows(); row++ {
		for col := 0; col < director.board.Cols(); col++ {
			tile := director.board.TileAt(row, col)
			if tile.Revealed() {
				director.memory[cell{row, col}] = tile.Identity()
			}
		}
	}
}

// knownPair finds two face-down cells remembered to hold the same
// identity.
func (director *Director) knownPair() (cell, cell, bool) {
	firstSeen := make(map[game.Identity]cell, len(director.memory))
	for c, identity := range director.memory {
		if director.board.TileAt(c.row, c.col).Revealed() {
			continue
		}
		if partner, seen := firstSeen[identity]; seen {
			return partner, c, true
		}
		firstSeen[identity] = c
	}
	return cell{}, cell{}, false
}

// partner finds the remembered face-down twin of first, if any.
func (director *Director) partner(first *game.Tile) (cell, bool) {
	origin := cell{first.Row(), first.Col()}
	for c, identity := range director.memory {
		if c == origin || identity != first.Identity() {
			continue
		}
		if director.board.TileAt(c.row, c.col).Revealed() {
			continue
		}
		return c, true
	}
	return cell{}, false
}

// probe picks a face-down cell to flip for information, preferring cells
// never seen.
func (director *Director) probe() (cell, bool) {
	unseen := make([]cell, 0, director.board.NumTiles())
	hidden := make([]cell, 0, director.board.NumTiles())
	for row := 0; row < director.board.Rows(); row++ {
		for col := 0; col < director.board.Cols(); col++ {
			if director.board.TileAt(row, col).Revealed() {
				continue
			}
			c := cell{row, col}
			hidden = append(hidden, c)
			if _, seen := director.memory[c]; !seen {
				unseen = append(unseen, c)
			}
		}
	}

	pool := unseen
	if len(pool) == 0 {
		pool = hidden
	}
	if len(pool) == 0 {
		return cell{}, false
	}
	return pool[director.rand.Intn(len(pool))], true
}
