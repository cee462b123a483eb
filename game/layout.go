package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

var (
	// ErrMalformedLayout means the grid does not line up with the declared
	// dimensions.
	ErrMalformedLayout = errors.New("layout grid does not match its dimensions")
	// ErrUnpairedLayout means some identity does not appear exactly twice.
	ErrUnpairedLayout = errors.New("layout identities must pair up")
)

// Layout is the face arrangement of a board: its dimensions plus the
// row-major identity grid. It records how a board was dealt, never which
// tiles were face-up, so replaying one always starts a fresh game.
type Layout struct {
	Rows int        `yaml:"rows"`
	Cols int        `yaml:"cols"`
	Grid [][]string `yaml:"grid,flow"`
}

// Layout captures the board's arrangement for later replay.
func (board *Board) Layout() Layout {
	grid := make([][]string, board.rows)
	for row := range grid {
		grid[row] = make([]string, board.cols)
		for col := range grid[row] {
			grid[row][col] = board.tiles[row][col].identity.String()
		}
	}
	return Layout{Rows: board.rows, Cols: board.cols, Grid: grid}
}

func (layout Layout) Serialize() string {
	out, err := yaml.Marshal(layout)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func (layout Layout) validate() error {
	if layout.Rows < 1 || layout.Cols < 1 || (layout.Rows*layout.Cols)%2 != 0 {
		return fmt.Errorf("%w: %dx%d", ErrOddGrid, layout.Rows, layout.Cols)
	}
	if len(layout.Grid) != layout.Rows {
		return fmt.Errorf("%w: %d rows declared, %d present", ErrMalformedLayout, layout.Rows, len(layout.Grid))
	}

	counts := make(map[string]int, layout.Rows*layout.Cols/2)
	for row, values := range layout.Grid {
		if len(values) != layout.Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedLayout, row, len(values), layout.Cols)
		}
		for _, value := range values {
			counts[value]++
		}
	}
	for value, count := range counts {
		if count != 2 {
			return fmt.Errorf("%w: %q appears %d times", ErrUnpairedLayout, value, count)
		}
	}
	return nil
}

// LoadLayout parses and validates a serialized layout.
func LoadLayout(in string) (Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return layout, layout.validate()
}

func LoadLayoutFile(path string) (Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}

	layout, err := LoadLayout(string(raw))
	if err != nil {
		return Layout{}, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// NewBoardFromLayout deals a board with a fixed arrangement instead of a
// shuffled one. Every tile starts face-down.
func NewBoardFromLayout(layout Layout, revealDelay time.Duration) (*Board, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}

	board := &Board{
		rows:        layout.Rows,
		cols:        layout.Cols,
		hidden:      layout.Rows * layout.Cols,
		revealDelay: revealDelay,
		rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	board.tiles = make([][]Tile, layout.Rows)
	for row := range board.tiles {
		board.tiles[row] = make([]Tile, layout.Cols)
		for col := range board.tiles[row] {
			board.tiles[row][col] = Tile{
				row:      row,
				col:      col,
				identity: identityFromString(layout.Grid[row][col]),
			}
		}
	}

	return board, nil
}
