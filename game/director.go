package game

// CellAction is a director's request to flip the tile at a cell.
type CellAction struct {
	Row, Col int
}

// Director plays the board automatically. The run loop calls Act on a
// fixed cadence and applies the sent actions itself, on its own goroutine,
// so directors observe the board between turns but never mutate it.
type Director interface {
	/**
	 * Initialize the director with the board it will play
	 */
	Init(*Board)

	/**
	 * Send zero or more clicks for the current position, then return
	 */
	Act(actions chan<- CellAction)

	/**
	 * Stop acting; the game is over
	 */
	End()
}

// BaseDirector is a no-op Director for embedding.
type BaseDirector struct{}

func (BaseDirector) Init(*Board) {}

func (BaseDirector) Act(chan<- CellAction) {}

func (BaseDirector) End() {}
