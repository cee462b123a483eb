package game

import "time"

// TurnPhase is the state of the two-flip turn machine.
type TurnPhase int

const (
	// TurnIdle means no tile of the current turn is face-up yet.
	TurnIdle TurnPhase = iota
	// TurnOneRevealed means the first tile of the turn is face-up, waiting
	// for its partner.
	TurnOneRevealed
	// TurnPairMatched means both tiles are face-up and equal; the next tick
	// locks them in and starts a fresh turn.
	TurnPairMatched
	// TurnPairMismatched means both tiles are face-up and unequal; they flip
	// back on the first tick at or past the reveal deadline.
	TurnPairMismatched
)

var turnPhaseNames = map[TurnPhase]string{
	TurnIdle:           "Idle",
	TurnOneRevealed:    "OneRevealed",
	TurnPairMatched:    "PairMatched",
	TurnPairMismatched: "PairMismatched",
}

func (phase TurnPhase) String() string {
	if name, known := turnPhaseNames[phase]; known {
		return name
	}
	return "Unknown"
}

// turnState is the machine's working memory: the pending pair, whether it
// must roll back, and the earliest instant the rollback may fire.
type turnState struct {
	first, second *Tile
	rollback      bool
	deadline      time.Time
}

// Phase derives the machine state from the pending pair. The phase is
// never stored; it cannot drift from the fields it summarizes.
func (board *Board) Phase() TurnPhase {
	switch {
	case board.turn.first == nil:
		return TurnIdle
	case board.turn.second == nil:
		return TurnOneRevealed
	case board.turn.rollback:
		return TurnPairMismatched
	default:
		return TurnPairMatched
	}
}

// PendingFirst returns the tile waiting for its partner, when the turn has
// exactly one tile face-up.
func (board *Board) PendingFirst() (*Tile, bool) {
	if board.turn.first == nil || board.turn.second != nil {
		return nil, false
	}
	return board.turn.first, true
}

// Click flips the tile at (row, col). The guards are total: clicks off the
// grid, on a face-up tile, or while a resolved pair is still on display are
// absorbed without any state change, so callers never need to pre-check.
//
// The clock is the caller's: now stamps the rollback deadline when the
// second flip mismatches.
func (board *Board) Click(row, col int, now time.Time) {
	if row < 0 || row >= board.rows || col < 0 || col >= board.cols {
		return
	}

	phase := board.Phase()
	if phase != TurnIdle && phase != TurnOneRevealed {
		return
	}

	tile := &board.tiles[row][col]
	if tile.revealed {
		return
	}

	tile.revealed = true
	board.hidden--

	if phase == TurnIdle {
		board.turn.first = tile
		return
	}

	board.turn.second = tile
	if tile.identity != board.turn.first.identity {
		board.turn.rollback = true
		board.turn.deadline = now.Add(board.revealDelay)
	}
}

// Tick resolves a completed pair. A matched pair is locked in immediately;
// a mismatched pair flips back only once now reaches its deadline, so any
// tick cadence at or below the reveal delay feels the same to the player.
// Ticks in the other phases change nothing.
func (board *Board) Tick(now time.Time) {
	switch board.Phase() {
	case TurnPairMatched:
		board.matches++
		board.turns++
		board.turn = turnState{}
	case TurnPairMismatched:
		if now.Before(board.turn.deadline) {
			return
		}
		board.turn.first.revealed = false
		board.turn.second.revealed = false
		board.hidden += 2
		board.turns++
		board.turn = turnState{}
	}
}
