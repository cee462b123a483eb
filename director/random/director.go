package random

import (
	"math/rand"
	"time"

	"github.com/lysseus/memory/game"
)

// Director flips random face-down tiles, with no memory of anything it has
// seen. It mostly serves as a pacing baseline for smarter directors.
type Director struct {
	game.BaseDirector

	// Seed fixes the click order; 0 draws from the clock.
	Seed int64

	board *game.Board
	rand  *rand.Rand
}

func (director *Director) Init(board *game.Board) {
	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	director.board = board
	director.rand = rand.New(rand.NewSource(seed))
}

func (director *Director) Act(actions chan<- game.CellAction) {
	phase := director.board.Phase()
	if phase != game.TurnIdle && phase != game.TurnOneRevealed {
		return
	}

	hidden := make([]game.CellAction, 0, director.board.NumTiles())
	for row := 0; row < director.board.Rows(); row++ {
		for col := 0; col < director.board.Cols(); col++ {
			if !director.board.TileAt(row, col).Revealed() {
				hidden = append(hidden, game.CellAction{Row: row, Col: col})
			}
		}
	}
	if len(hidden) == 0 {
		return
	}

	actions <- hidden[director.rand.Intn(len(hidden))]
}
