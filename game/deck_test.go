package game

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDeck(t *testing.T) {
	deck := DefaultDeck()

	if got, want := len(deck.Identities), 36; got != want {
		t.Fatalf("len(Identities) = %d, want %d", got, want)
	}

	seen := make(map[Identity]bool)
	for _, identity := range deck.Identities {
		if identity.Kind != IdentityGlyph {
			t.Errorf("identity %s is not a glyph", identity)
		}
		if seen[identity] {
			t.Errorf("identity %s dealt twice", identity)
		}
		seen[identity] = true
	}
}

func TestLoadDeckFile(t *testing.T) {
	dir := t.TempDir()

	writeDeck := func(name, contents string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		return path
	}

	t.Run("named deck", func(t *testing.T) {
		path := writeDeck("named.yaml", "name: fruit\nglyphs: [apple, pear, plum]\n")

		deck, err := LoadDeckFile(path)
		if err != nil {
			t.Fatalf("LoadDeckFile: %v", err)
		}
		if got, want := deck.Name, "fruit"; got != want {
			t.Errorf("Name = %q, want %q", got, want)
		}
		if got, want := len(deck.Identities), 3; got != want {
			t.Fatalf("len(Identities) = %d, want %d", got, want)
		}
		if got, want := deck.Identities[0], Glyph("apple"); got != want {
			t.Errorf("Identities[0] = %#v, want %#v", got, want)
		}
	})

	t.Run("name falls back to file name", func(t *testing.T) {
		path := writeDeck("animals.yaml", "glyphs: [cat, dog]\n")

		deck, err := LoadDeckFile(path)
		if err != nil {
			t.Fatalf("LoadDeckFile: %v", err)
		}
		if got, want := deck.Name, "animals"; got != want {
			t.Errorf("Name = %q, want %q", got, want)
		}
	})

	t.Run("empty deck", func(t *testing.T) {
		path := writeDeck("empty.yaml", "name: empty\nglyphs: []\n")

		if _, err := LoadDeckFile(path); !errors.Is(err, ErrEmptyDeck) {
			t.Errorf("LoadDeckFile() error = %v, want %v", err, ErrEmptyDeck)
		}
	})

	t.Run("unparseable deck", func(t *testing.T) {
		path := writeDeck("broken.yaml", "glyphs: [unclosed\n")

		if _, err := LoadDeckFile(path); err == nil {
			t.Error("LoadDeckFile() on broken yaml returned no error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadDeckFile(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("LoadDeckFile() on a missing file returned no error")
		}
	})
}

func writeTestImage(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), A: 255})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer file.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(file, img, nil)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadPictureDeck(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "cat.png"))
	writeTestImage(t, filepath.Join(dir, "dog.jpg"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	deck, err := LoadPictureDeck(dir)
	if err != nil {
		t.Fatalf("LoadPictureDeck: %v", err)
	}

	want := []Identity{Picture("cat"), Picture("dog")}
	if len(deck.Identities) != len(want) {
		t.Fatalf("Identities = %v, want %v", deck.Identities, want)
	}
	for i, identity := range want {
		if deck.Identities[i] != identity {
			t.Errorf("Identities[%d] = %s, want %s", i, deck.Identities[i], identity)
		}
	}

	for _, name := range []string{"cat", "dog"} {
		if _, ok := deck.Pictures[name]; !ok {
			t.Errorf("Pictures missing %q", name)
		}
	}
	if _, ok := deck.Pictures["broken"]; ok {
		t.Error("Pictures contains the undecodable file")
	}
}

func TestLoadPictureDeckDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "cat.png"))
	writeTestImage(t, filepath.Join(dir, "cat.jpg"))

	deck, err := LoadPictureDeck(dir)
	if err != nil {
		t.Fatalf("LoadPictureDeck: %v", err)
	}
	if got, want := len(deck.Identities), 1; got != want {
		t.Errorf("len(Identities) = %d, want %d", got, want)
	}
}

func TestLoadPictureDeckEmptyDir(t *testing.T) {
	if _, err := LoadPictureDeck(t.TempDir()); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("LoadPictureDeck() error = %v, want %v", err, ErrEmptyDeck)
	}
}

func TestLoadPictureDeckMissingDir(t *testing.T) {
	if _, err := LoadPictureDeck(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadPictureDeck() on a missing directory returned no error")
	}
}
