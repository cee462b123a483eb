package game

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "image/jpeg"
	_ "image/png"

	"github.com/faiface/pixel"
	"gopkg.in/yaml.v2"

	"github.com/lysseus/memory/util/collections"
)

// ErrEmptyDeck means an identity source produced nothing usable.
var ErrEmptyDeck = errors.New("deck has no identities")

// decodeParallelism caps how many pictures decode at once.
const decodeParallelism = 4

// Deck is a pool of identities to deal boards from. A board only ever uses
// a prefix of Identities, so a deck may be arbitrarily larger than any one
// board needs.
type Deck struct {
	Name       string
	Identities []Identity

	// Pictures holds the decoded image per picture identity value. nil for
	// pure glyph decks.
	Pictures map[string]pixel.Picture
}

const defaultGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultDeck deals single-character glyphs, enough for boards up to 72
// tiles.
func DefaultDeck() Deck {
	deck := Deck{Name: "glyphs"}
	for _, glyph := range strings.Split(defaultGlyphs, "") {
		deck.Identities = append(deck.Identities, Glyph(glyph))
	}
	return deck
}

type deckFile struct {
	Name   string   `yaml:"name"`
	Glyphs []string `yaml:"glyphs,flow"`
}

// LoadDeckFile reads a glyph deck from a yaml file:
//
//	name: fruit
//	glyphs: [apple, pear, plum, fig]
//
// The name falls back to the file name when the file leaves it out.
func LoadDeckFile(path string) (Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}

	var file deckFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Deck{}, fmt.Errorf("parse deck %s: %w", path, err)
	}

	deck := Deck{Name: file.Name}
	if deck.Name == "" {
		deck.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for _, glyph := range file.Glyphs {
		deck.Identities = append(deck.Identities, Glyph(glyph))
	}
	if len(deck.Identities) == 0 {
		return Deck{}, fmt.Errorf("%s: %w", path, ErrEmptyDeck)
	}
	return deck, nil
}

// LoadPictureDeck builds a deck from every decodable png or jpeg in dir.
// Each file name, sans extension, becomes one picture identity. Files
// decode on a small worker pool; ones that fail to decode are skipped with
// a warning rather than sinking the whole deck.
func LoadPictureDeck(dir string) (Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Deck{}, fmt.Errorf("read picture dir: %w", err)
	}

	// ReadDir sorts by file name, which fixes the identity order and makes
	// seeded deals reproducible.
	names := make([]string, 0, len(entries))
	paths := make(map[string]string, len(entries))
	claimed := make(collections.Set[string], len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
		default:
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if claimed.Contains(name) {
			log.WithField("file", entry.Name()).Warn("skipping picture with duplicate name")
			continue
		}
		claimed.Add(name)
		names = append(names, name)
		paths[name] = filepath.Join(dir, entry.Name())
	}

	type decoded struct {
		name    string
		picture pixel.Picture
		err     error
	}

	results := make(chan decoded, len(names))
	permitCh := make(chan struct{}, decodeParallelism)
	for i := 0; i < decodeParallelism; i++ {
		permitCh <- struct{}{}
	}

	wg := sync.WaitGroup{}
	for _, name := range names {
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()

			<-permitCh
			defer func() {
				permitCh <- struct{}{}
			}()

			picture, err := loadPicture(path)
			results <- decoded{name: name, picture: picture, err: err}
		}(name, paths[name])
	}
	wg.Wait()
	close(results)

	deck := Deck{
		Name:     filepath.Base(dir),
		Pictures: make(map[string]pixel.Picture, len(names)),
	}
	for result := range results {
		if result.err != nil {
			log.WithError(result.err).WithField("picture", result.name).Warn("skipping undecodable picture")
			continue
		}
		deck.Pictures[result.name] = result.picture
	}
	for _, name := range names {
		if _, ok := deck.Pictures[name]; ok {
			deck.Identities = append(deck.Identities, Picture(name))
		}
	}
	if len(deck.Identities) == 0 {
		return Deck{}, fmt.Errorf("%s: %w", dir, ErrEmptyDeck)
	}
	return deck, nil
}

func loadPicture(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}
