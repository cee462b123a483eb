package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lysseus/memory/director/random"
	"github.com/lysseus/memory/director/recall"
	"github.com/lysseus/memory/game"
)

var config = game.NewConfig()
var directorName directorValue

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Play manual or computer-driven concentration",
	Long: `memory is a concentration game: find every matching pair in a grid
of face-down tiles, two flips at a time.

Run with no arguments to play manually
	memory

Use the director flag to have the computer play while you watch
	memory --director recall
`,
	Run: func(cmd *cobra.Command, args []string) {
		if factory, hasDirector := directorFactories[string(directorName)]; hasDirector {
			config.Director = factory()
		}

		pixelgl.Run(func() {
			game.Run(config)
		})
	},
}

func Execute() {
	// A .env file is optional; the process environment wins either way.
	_ = godotenv.Load()

	if err := config.ParseEnv(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type directorValue string

var directorFactories = map[string]func() game.Director{
	"random": func() game.Director { return &random.Director{} },
	"recall": func() game.Director { return &recall.Director{} },
}

func directorNames() string {
	names := []string{"none"}
	for name := range directorFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func (value *directorValue) String() string {
	if *value == "" {
		return "none"
	}
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if name == "none" {
		*value = ""
		return nil
	}
	if _, isValid := directorFactories[name]; isValid {
		*value = directorValue(name)
		return nil
	}
	return fmt.Errorf("invalid director %q (one of: %s)", name, directorNames())
}

func (value *directorValue) Type() string {
	return "game.Director"
}

func init() {
	rootCmd.Flags().IntVarP(&config.Rows, "rows", "r", config.Rows, "Rows of the game board, in tiles (rows*cols must be even)")
	rootCmd.Flags().IntVarP(&config.Cols, "cols", "c", config.Cols, "Columns of the game board, in tiles")
	rootCmd.Flags().DurationVar(&config.RevealDelay, "delay", config.RevealDelay, "How long a mismatched pair stays face-up")
	rootCmd.Flags().DurationVar(&config.TickInterval, "tick", config.TickInterval, "Cadence of the rollback clock")
	rootCmd.Flags().Float64Var(&config.TileSize, "tile-size", config.TileSize, "Tile edge length, in pixels")
	rootCmd.Flags().Int64VarP(&config.Seed, "seed", "s", config.Seed, "Shuffle seed (0 draws a fresh one)")
	rootCmd.Flags().StringVar(&config.DeckFile, "deck", config.DeckFile, "Yaml glyph deck to deal from")
	rootCmd.Flags().StringVar(&config.PictureDir, "pictures", config.PictureDir, "Directory of images to deal from, instead of glyphs")
	rootCmd.Flags().StringVar(&config.LayoutFile, "layout", config.LayoutFile, "Yaml layout file with a fixed arrangement")
	rootCmd.Flags().StringVar(&config.SaveLayoutsDir, "save-layouts", config.SaveLayoutsDir, "Directory to save finished arrangements to")
	rootCmd.Flags().VarP(&directorName, "director", "d", "Make the computer play: "+directorNames())
	rootCmd.Flags().DurationVar(&config.DirectorInterval, "director-interval", config.DirectorInterval, "How often the director acts")
}
