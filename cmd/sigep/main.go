// sigep is a small 2D geometry toolkit: vectors, rectangles and rotated
// rectangles, plus scenes of shapes that can be probed, rendered and edited
// in the terminal.
//
// Usage:
//
//	sigep vector <x> <y>           - Inspect a vector
//	sigep rect <x> <y> <w> <h>     - Inspect a (rotated) rectangle
//	sigep list                     - List the shapes of a scene
//	sigep probe <x> <y>            - Name the shapes containing a point
//	sigep render                   - Draw the scene once
//	sigep view                     - Interactive scene viewer
//	sigep serve                    - Serve the viewer over SSH
//	sigep store put|get|list|rm    - Manage stored scenes
//
// Global flags:
//
//	--scene <path>      - Scene YAML file (default: search order, then built-in)
//	--stored <name>     - Load the scene from the database instead
//	--db <path>         - Set database path (default: ~/.sigep/scenes.db)
//	--config <path>     - Viewer settings YAML (default: search order, then built-in)
//	--precision <p>     - Step size preset: fine, normal, coarse
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sigep/internal/config"
	"github.com/vovakirdan/sigep/internal/scene"
	"github.com/vovakirdan/sigep/internal/storage"
)

var (
	// Global flags
	flagScene    string
	flagStored   string
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
	flagPrecise  string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sigep",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sigep",
	Short: "sigep - 2D vectors, rectangles and rotated rectangles",
	Long: `sigep is a 2D geometry toolkit for the terminal.

Available commands:
  vector   - Inspect a vector
  rect     - Inspect a rectangle, optionally rotated
  list     - List the shapes of a scene
  probe    - Name the shapes containing a point
  render   - Draw the scene once
  view     - Interactive scene viewer
  serve    - Serve the viewer over SSH
  store    - Manage scenes stored in the database

Examples:
  sigep vector 3 4 --rotate 90 --deg
  sigep rect 0 0 10 10 --rotate 0.785 --point 5,5
  sigep probe --scene ./scenes/demo.yaml -- 9 -5
  sigep view
  sigep serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", "", "Path to scene YAML")
	rootCmd.PersistentFlags().StringVar(&flagStored, "stored", "", "Load the named scene from the database")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sigep/scenes.db", "Path to scene database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to viewer settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagPrecise, "precision", "", "Step size preset: fine, normal, coarse")

	rootCmd.AddCommand(vectorCmd)
	rootCmd.AddCommand(rectCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(storeCmd)
}

// loadScene resolves the scene selected by the global flags.
func loadScene() (scene.Scene, error) {
	if flagStored == "" {
		return scene.Load(flagScene, logger)
	}
	if flagScene != "" {
		return scene.Scene{}, fmt.Errorf("--scene and --stored are mutually exclusive")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return scene.Scene{}, err
	}
	defer store.Close()

	sc, err := store.LoadScene(flagStored)
	if err != nil {
		return scene.Scene{}, err
	}
	logger.Debug("loaded stored scene", "name", sc.Name, "shapes", sc.Len())
	return sc, nil
}

// loadSettings reads viewer settings and applies the precision preset.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return settings, err
	}
	preset, err := config.ParsePrecision(flagPrecise)
	if err != nil {
		return settings, err
	}
	config.ApplyPrecision(&settings.View, preset)
	logger.Debug("settings", "step", settings.View.Step, "spin_deg", settings.View.SpinStepDeg, "precision", preset)
	return settings, nil
}
