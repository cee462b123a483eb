package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lysseus/memory/util/collections"
)

// Configuration errors. All of them surface before a window ever opens;
// none can occur mid-game.
var (
	// ErrOddGrid means rows*cols is odd (or not positive), so the tiles
	// cannot pair up.
	ErrOddGrid = errors.New("board cannot pair up an odd number of tiles")
	// ErrSmallDeck means the deck holds fewer identities than the board
	// needs pairs.
	ErrSmallDeck = errors.New("deck has too few identities for the board")
	// ErrDuplicateIdentity means the deck repeats an identity, which would
	// put more than two copies of a face on the board.
	ErrDuplicateIdentity = errors.New("deck identities must be distinct")
)

// Board is a grid of paired tiles plus the turn machine that flips them.
// Every identity on the board occurs on exactly two tiles.
//
// Board is not safe for concurrent use; the game loop applies every
// mutation, including director actions, from a single goroutine.
type Board struct {
	rows, cols int
	tiles      [][]Tile

	// hidden counts face-down tiles. The game is over when it reaches zero,
	// which only a matched pair can make happen.
	hidden int

	turn    turnState
	matches int
	turns   int

	revealDelay time.Duration
	rand        *rand.Rand
}

type boardConfig struct {
	rows, cols  int
	deck        []Identity
	seed        int64
	revealDelay time.Duration
}

func createBoard(config boardConfig) (*Board, error) {
	if config.rows < 1 || config.cols < 1 || (config.rows*config.cols)%2 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOddGrid, config.rows, config.cols)
	}

	numPairs := config.rows * config.cols / 2
	if len(config.deck) < numPairs {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrSmallDeck, numPairs, len(config.deck))
	}

	seen := make(collections.Set[Identity], len(config.deck))
	for _, identity := range config.deck {
		if seen.Contains(identity) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIdentity, identity)
		}
		seen.Add(identity)
	}

	board := &Board{
		rows:        config.rows,
		cols:        config.cols,
		hidden:      config.rows * config.cols,
		revealDelay: config.revealDelay,
		rand:        rand.New(rand.NewSource(config.seed)),
	}

	identities := make([]Identity, 0, board.NumTiles())
	for _, identity := range config.deck[:numPairs] {
		identities = append(identities, identity, identity)
	}
	board.rand.Shuffle(len(identities), func(i, j int) {
		identities[i], identities[j] = identities[j], identities[i]
	})

	board.tiles = make([][]Tile, config.rows)
	for row := range board.tiles {
		board.tiles[row] = make([]Tile, config.cols)
		for col := range board.tiles[row] {
			board.tiles[row][col] = Tile{
				row:      row,
				col:      col,
				identity: identities[row*config.cols+col],
			}
		}
	}

	return board, nil
}

// NewBoard shuffles a fresh board from the first rows*cols/2 identities of
// deck, laying each out twice. The same seed always deals the same board.
func NewBoard(rows, cols int, deck []Identity, seed int64, revealDelay time.Duration) (*Board, error) {
	return createBoard(boardConfig{
		rows:        rows,
		cols:        cols,
		deck:        deck,
		seed:        seed,
		revealDelay: revealDelay,
	})
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumTiles() int {
	return board.rows * board.cols
}

func (board *Board) NumPairs() int {
	return board.rows * board.cols / 2
}

// TileAt requires 0 <= row < Rows() and 0 <= col < Cols(). Positions that
// might lie off the grid go through Click or a grid lookup instead, which
// absorb them; asking for a tile that cannot exist is a caller bug.
func (board *Board) TileAt(row, col int) *Tile {
	return &board.tiles[row][col]
}

// HiddenCount returns the number of face-down tiles.
func (board *Board) HiddenCount() int {
	return board.hidden
}

// Matches returns the number of pairs locked in so far.
func (board *Board) Matches() int {
	return board.matches
}

// Turns returns the number of completed two-flip turns.
func (board *Board) Turns() int {
	return board.turns
}

// IsOver reports whether every tile is face-up for good.
func (board *Board) IsOver() bool {
	return board.hidden == 0
}
