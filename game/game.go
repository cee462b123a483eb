// Package game implements a concentration game: a grid of face-down
// paired tiles, the two-flip turn machine that reveals them, and the
// windowed loop that drives it all.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var log = logrus.New()

const (
	headerHeight   = 50.0
	minWindowWidth = 240.0

	// Fraction of the cell a tile face fills; the rest is grout.
	tileFaceScale = 0.92

	// Transparency of director flashes when first displayed
	flashBaseAlpha = 0.45
	// Total time a director flash stays on screen
	flashDuration = 400 * time.Millisecond
)

// flash marks a cell a director just clicked, drawn as a fading overlay so
// a human can follow the computer's play.
type flash struct {
	row, col int
	shown    time.Time
}

func Run(config Config) {
	deck, err := config.LoadDeck()
	if err != nil {
		log.WithError(err).Fatal("cannot load deck")
	}
	sprites := buildSprites(deck)

	cfg := pixelgl.WindowConfig{
		Title: "memory",
		Bounds: pixel.R(
			0, 0,
			math.Max(float64(config.Cols)*config.TileSize, minWindowWidth),
			float64(config.Rows)*config.TileSize+headerHeight,
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	tileText := text.New(pixel.ZV, basicAtlas)
	var scoreText *text.Text
	var cellPosText *text.Text

	flashes := deque.New[flash]()

	var board *Board
	var grid gridLayout
	var over bool

	resetBoard := func() {
		var err error
		board, err = config.CreateBoard(deck)
		if err != nil {
			log.WithError(err).Fatal("cannot deal board")
		}

		win.SetBounds(
			pixel.R(
				0, 0,
				math.Max(float64(board.Cols())*config.TileSize, minWindowWidth),
				float64(board.Rows())*config.TileSize+headerHeight,
			),
		)

		topLeft := win.Bounds().Vertices()[1]
		topRight := win.Bounds().Max
		grid = gridLayout{
			rows:     board.Rows(),
			cols:     board.Cols(),
			tileSize: config.TileSize,
			origin:   topLeft.Sub(pixel.V(0, headerHeight)),
		}

		scoreText = text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
		scoreText.Color = colornames.Black

		cellPosText = text.New(topRight.Add(pixel.V(-80, -30)), basicAtlas)
		cellPosText.Color = colornames.Darkcyan

		over = false
		flashes.Clear()

		if config.Director != nil {
			config.Director.Init(board)
		}
	}

	resetBoard()

	// The game clock stops while paused: it lags the wall clock by the
	// total time spent paused, so a rollback deadline never burns down
	// behind a pause screen.
	paused := false
	var pausedAt time.Time
	var pausedTotal time.Duration
	gameNow := func() time.Time {
		return time.Now().Add(-pausedTotal)
	}

	applyDirector := func() {
		actions := make(chan CellAction)
		go func() {
			config.Director.Act(actions)
			close(actions)
		}()

		// Buffer until Act returns, so directors never observe a board
		// mid-mutation.
		var pending []CellAction
		for action := range actions {
			pending = append(pending, action)
		}

		now := gameNow()
		for _, action := range pending {
			board.Click(action.Row, action.Col, now)
			flashes.PushBack(flash{row: action.Row, col: action.Col, shown: time.Now()})
		}
	}

	tick := time.Tick(config.TickInterval)
	directorTick := time.Tick(config.DirectorInterval)

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if !paused {
			select {
			case <-tick:
				board.Tick(gameNow())
			case <-directorTick:
				if config.Director != nil && !board.IsOver() {
					applyDirector()
				}
			default:
			}
		}

		// The final match stays pending until a tick locks it in, so the
		// counts below are settled by the time this fires.
		if !over && board.IsOver() && board.Phase() == TurnIdle {
			over = true
			log.WithFields(logrus.Fields{
				"turns": board.Turns(),
				"pairs": board.Matches(),
			}).Info("board cleared")
			config.saveLayout(board)
			if config.Director != nil {
				config.Director.End()
			}
		}

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "pairs %d/%d   turns %d", board.Matches(), board.NumPairs(), board.Turns())
		if board.IsOver() {
			scoreText.Color = colornames.Green
			fmt.Fprintf(scoreText, "   CLEAR!")
		} else if paused {
			scoreText.Color = colornames.Chocolate
			fmt.Fprintf(scoreText, "   PAUSED")
		}
		scoreText.Draw(win, pixel.IM.Scaled(scoreText.Orig, 2))

		if win.MouseInsideWindow() {
			if row, col, ok := grid.cellAt(win.MousePosition()); ok {
				cellPosText.Clear()
				fmt.Fprintf(cellPosText, "(%d, %d)", row, col)
				cellPosText.Draw(win, pixel.IM)
			}
		}

		imd := imdraw.New(nil)
		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				rect := grid.cellRect(row, col)
				face := rect.Resized(rect.Center(), rect.Size().Scaled(tileFaceScale))

				if board.TileAt(row, col).Revealed() {
					imd.Color = colornames.Whitesmoke
				} else {
					imd.Color = colornames.Steelblue
				}
				imd.Push(face.Min, face.Max)
				imd.Rectangle(0) // 0 = filled
			}
		}
		imd.Draw(win)

		for row := 0; row < board.Rows(); row++ {
			for col := 0; col < board.Cols(); col++ {
				tile := board.TileAt(row, col)
				if !tile.Revealed() {
					continue
				}
				drawFace(win, tileText, sprites, tile.Identity(), grid.cellRect(row, col))
			}
		}

		now := time.Now()
		for flashes.Len() > 0 && now.Sub(flashes.Front().shown) > flashDuration {
			flashes.PopFront()
		}
		if flashes.Len() > 0 {
			flashImd := imdraw.New(nil)
			for i := 0; i < flashes.Len(); i++ {
				f := flashes.At(i)

				progress := 1 - float64(now.Sub(f.shown))/float64(flashDuration)
				alpha := flashBaseAlpha * InOutCubic(progress)

				rect := grid.cellRect(f.row, f.col)
				flashImd.Color = pixel.RGB(1, 0, 0).Mul(pixel.Alpha(alpha))
				flashImd.Push(rect.Min, rect.Max)
				flashImd.Rectangle(0) // 0 = filled
			}
			flashImd.Draw(win)
		}

		// Pause with Space
		if win.JustPressed(pixelgl.KeySpace) && !board.IsOver() {
			paused = !paused
			if paused {
				pausedAt = time.Now()
			} else {
				pausedTotal += time.Since(pausedAt)
			}
		}

		// Start a new game with Enter
		if over && win.JustPressed(pixelgl.KeyEnter) {
			config.Seed = board.rand.Int63()
			resetBoard()
		}

		if !paused && !board.IsOver() && win.JustPressed(pixelgl.MouseButtonLeft) && win.MouseInsideWindow() {
			if row, col, ok := grid.cellAt(win.MousePosition()); ok {
				board.Click(row, col, gameNow())
			}
		}
	}
}

// drawFace renders a revealed identity centered in rect: a sprite for
// picture identities the deck has an image for, text otherwise.
func drawFace(win *pixelgl.Window, tileText *text.Text, sprites map[string]*pixel.Sprite, identity Identity, rect pixel.Rect) {
	if identity.Kind == IdentityPicture {
		if sprite, ok := sprites[identity.Value]; ok {
			frame := sprite.Frame()
			scale := tileFaceScale * math.Min(rect.W()/frame.W(), rect.H()/frame.H())
			sprite.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(rect.Center()))
			return
		}
	}

	tileText.Clear()
	tileText.Color = colornames.Black
	fmt.Fprint(tileText, identity.Value)

	bounds := tileText.Bounds()
	if bounds.W() == 0 || bounds.H() == 0 {
		return
	}
	scale := (rect.H() * 0.4) / tileText.LineHeight
	if maxWidth := rect.W() * tileFaceScale; bounds.W()*scale > maxWidth {
		scale = maxWidth / bounds.W()
	}

	offset := rect.Center().Sub(bounds.Center().Scaled(scale))
	tileText.Draw(win, pixel.IM.Scaled(pixel.ZV, scale).Moved(offset))
}

func buildSprites(deck Deck) map[string]*pixel.Sprite {
	sprites := make(map[string]*pixel.Sprite, len(deck.Pictures))
	for name, picture := range deck.Pictures {
		sprites[name] = pixel.NewSprite(picture, picture.Bounds())
	}
	return sprites
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}
