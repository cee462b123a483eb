package game

import (
	"errors"
	"testing"
	"time"
)

func TestNewBoardDealsEveryIdentityTwice(t *testing.T) {
	deck := DefaultDeck()
	board, err := NewBoard(4, 4, deck.Identities, 1, testRevealDelay)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	counts := make(map[Identity]int)
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			counts[board.TileAt(row, col).Identity()]++
		}
	}

	if got, want := len(counts), board.NumPairs(); got != want {
		t.Errorf("dealt %d distinct identities, want %d", got, want)
	}
	for identity, count := range counts {
		if count != 2 {
			t.Errorf("identity %s dealt %d times, want 2", identity, count)
		}
	}
}

func TestNewBoardStartsFaceDownAndIdle(t *testing.T) {
	deck := DefaultDeck()
	board, err := NewBoard(2, 3, deck.Identities, 7, testRevealDelay)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if got, want := board.HiddenCount(), 6; got != want {
		t.Errorf("HiddenCount() = %d, want %d", got, want)
	}
	if got, want := board.Phase(), TurnIdle; got != want {
		t.Errorf("Phase() = %v, want %v", got, want)
	}
	if board.IsOver() {
		t.Error("IsOver() = true on a fresh board")
	}
	if got, want := countRevealed(board), 0; got != want {
		t.Errorf("revealed %d tiles, want %d", got, want)
	}
}

func TestNewBoardSameSeedSameDeal(t *testing.T) {
	deck := DefaultDeck()

	first, err := NewBoard(4, 4, deck.Identities, 42, testRevealDelay)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	second, err := NewBoard(4, 4, deck.Identities, 42, testRevealDelay)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	for row := 0; row < first.Rows(); row++ {
		for col := 0; col < first.Cols(); col++ {
			got := second.TileAt(row, col).Identity()
			want := first.TileAt(row, col).Identity()
			if got != want {
				t.Fatalf("tile (%d, %d) = %s, want %s", row, col, got, want)
			}
		}
	}
}

func TestNewBoardConfigErrors(t *testing.T) {
	deck := DefaultDeck()

	tests := []struct {
		name       string
		rows, cols int
		deck       []Identity
		want       error
	}{
		{
			name: "odd tile count",
			rows: 3, cols: 3,
			deck: deck.Identities,
			want: ErrOddGrid,
		},
		{
			name: "zero rows",
			rows: 0, cols: 4,
			deck: deck.Identities,
			want: ErrOddGrid,
		},
		{
			name: "negative cols",
			rows: 2, cols: -2,
			deck: deck.Identities,
			want: ErrOddGrid,
		},
		{
			name: "deck too small",
			rows: 2, cols: 4,
			deck: deck.Identities[:3],
			want: ErrSmallDeck,
		},
		{
			name: "duplicate identity in deck",
			rows: 2, cols: 2,
			deck: []Identity{Glyph("A"), Glyph("B"), Glyph("A")},
			want: ErrDuplicateIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(tt.rows, tt.cols, tt.deck, 1, testRevealDelay)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBoard() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewBoardUsesDeckPrefix(t *testing.T) {
	deck := []Identity{Glyph("A"), Glyph("B"), Glyph("C")}
	board, err := NewBoard(1, 4, deck, 3, time.Second)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	dealt := make(map[Identity]bool)
	for col := 0; col < 4; col++ {
		dealt[board.TileAt(0, col).Identity()] = true
	}

	if !dealt[Glyph("A")] || !dealt[Glyph("B")] {
		t.Errorf("dealt %v, want both A and B", dealt)
	}
	if dealt[Glyph("C")] {
		t.Error("dealt C, which the board has no room for")
	}
}

func TestBoardAccessors(t *testing.T) {
	board, err := NewBoard(2, 5, DefaultDeck().Identities, 1, testRevealDelay)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if got, want := board.Rows(), 2; got != want {
		t.Errorf("Rows() = %d, want %d", got, want)
	}
	if got, want := board.Cols(), 5; got != want {
		t.Errorf("Cols() = %d, want %d", got, want)
	}
	if got, want := board.NumTiles(), 10; got != want {
		t.Errorf("NumTiles() = %d, want %d", got, want)
	}
	if got, want := board.NumPairs(), 5; got != want {
		t.Errorf("NumPairs() = %d, want %d", got, want)
	}
}
