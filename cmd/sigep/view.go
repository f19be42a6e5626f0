package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sigep/internal/platform/tui"
	"github.com/vovakirdan/sigep/internal/storage"
)

var (
	flagViewFPS  int
	flagViewSave bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Interactive scene viewer",
	Long: `Opens the scene in a full-screen viewer.

Controls:
  Tab/S-Tab   - Select next/previous shape
  →/]  ←/[    - Rotate the selection + / - (15° by default)
  WASD/HJKL   - Move the selection
  Space       - Spin the selection
  R           - Undo the selection's rotation
  ?           - Toggle full help
  Q/Esc       - Quit

Examples:
  sigep view
  sigep view --scene ./scenes/demo.yaml --save`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().IntVar(&flagViewFPS, "fps", 0, "Spin animation ticks per second (default: from settings)")
	viewCmd.Flags().BoolVar(&flagViewSave, "save", false, "Store the edited scene in the database on exit")
}

func runView(_ *cobra.Command, _ []string) error {
	sc, err := loadScene()
	if err != nil {
		return err
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagViewFPS > 0 {
		settings.View.FPS = flagViewFPS
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := settings.View.RuntimeConfig(width, height)
	p := tea.NewProgram(tui.NewViewerModel(sc, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	if !flagViewSave {
		return nil
	}
	vm, ok := final.(tui.ViewerModel)
	if !ok {
		return fmt.Errorf("viewer: unexpected final model %T", final)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveScene(vm.Scene()); err != nil {
		return err
	}
	logger.Info("scene saved", "name", vm.Scene().Name, "db", flagDBPath)
	return nil
}
