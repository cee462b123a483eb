package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries every recognized game option. Values resolve in order:
// NewConfig defaults, then ParseEnv, then whatever flags the command line
// layer writes on top.
type Config struct {
	Rows int `env:"MEMORY_ROWS"`
	Cols int `env:"MEMORY_COLS"`

	// How long a mismatched pair stays face-up before flipping back
	RevealDelay time.Duration `env:"MEMORY_REVEAL_DELAY"`
	// Cadence of the rollback clock; any value at or below RevealDelay
	// plays the same
	TickInterval time.Duration `env:"MEMORY_TICK_INTERVAL"`

	// Tile edge length, in pixels
	TileSize float64 `env:"MEMORY_TILE_SIZE"`

	// Shuffle seed; 0 draws a fresh one
	Seed int64 `env:"MEMORY_SEED"`

	// Yaml glyph deck to deal from
	DeckFile string `env:"MEMORY_DECK"`
	// Directory of images to deal from, instead of glyphs
	PictureDir string `env:"MEMORY_PICTURES"`
	// Yaml layout with a fixed arrangement, instead of a shuffle
	LayoutFile string `env:"MEMORY_LAYOUT"`

	// Directory where the arrangement of each finished game is saved
	SaveLayoutsDir string `env:"MEMORY_SAVE_LAYOUTS"`

	Director Director `env:"-"`
	// How often the director gets to act
	DirectorInterval time.Duration `env:"MEMORY_DIRECTOR_INTERVAL"`
}

func NewConfig() Config {
	return Config{
		Rows:             4,
		Cols:             4,
		RevealDelay:      800 * time.Millisecond,
		TickInterval:     50 * time.Millisecond,
		TileSize:         72,
		DirectorInterval: 500 * time.Millisecond,
	}
}

// ParseEnv overlays MEMORY_* environment variables onto the config.
func (config *Config) ParseEnv() error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// LoadDeck resolves the configured identity source. Pictures win over a
// deck file; with neither set, the builtin glyphs deal.
func (config Config) LoadDeck() (Deck, error) {
	switch {
	case config.PictureDir != "":
		return LoadPictureDeck(config.PictureDir)
	case config.DeckFile != "":
		return LoadDeckFile(config.DeckFile)
	default:
		return DefaultDeck(), nil
	}
}

// CreateBoard deals the board this config describes: a fixed arrangement
// when LayoutFile is set, otherwise a seeded shuffle from the deck.
func (config Config) CreateBoard(deck Deck) (*Board, error) {
	if config.LayoutFile != "" {
		layout, err := LoadLayoutFile(config.LayoutFile)
		if err != nil {
			return nil, err
		}
		return NewBoardFromLayout(layout, config.RevealDelay)
	}

	seed := config.Seed
	if seed == 0 {
		seed = cryptoSeed()
	}
	log.WithField("seed", seed).Debug("dealing board")

	return NewBoard(config.Rows, config.Cols, deck.Identities, seed, config.RevealDelay)
}

func (config Config) saveLayout(board *Board) {
	if config.SaveLayoutsDir == "" {
		return
	}

	if err := os.MkdirAll(config.SaveLayoutsDir, 0777); err != nil {
		log.WithError(err).Warn("cannot create layouts directory")
		return
	}

	filename := fmt.Sprintf("%s_%dx%d.yaml",
		time.Now().Format("20060102_150405.000"), board.rows, board.cols)
	path := filepath.Join(config.SaveLayoutsDir, filename)

	if err := os.WriteFile(path, []byte(board.Layout().Serialize()), 0644); err != nil {
		log.WithError(err).Warn("cannot save layout")
		return
	}
	log.WithField("path", path).Info("saved layout")
}

// cryptoSeed draws a shuffle seed from the OS entropy pool, falling back
// to the wall clock if that fails.
func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
