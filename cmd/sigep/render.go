package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/platform/tui"
	"github.com/vovakirdan/sigep/internal/scene"
)

var (
	flagRenderW      int
	flagRenderH      int
	flagRenderPlain  bool
	flagRenderSelect string
	flagRenderAspect float64
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the scene once",
	Long: `Rasterizes the scene to stdout, sized to the terminal unless --width and
--height are given. Probes inside a shape are drawn as ◉, others as ×.

Examples:
  sigep render
  sigep render --select plank
  sigep render --plain --width 60 --height 20 > scene.txt`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagRenderW, "width", 0, "Canvas width in cells (default: terminal width)")
	renderCmd.Flags().IntVar(&flagRenderH, "height", 0, "Canvas height in cells (default: terminal height)")
	renderCmd.Flags().BoolVar(&flagRenderPlain, "plain", false, "No colors or legend")
	renderCmd.Flags().StringVar(&flagRenderSelect, "select", "", "Highlight the named shape")
	renderCmd.Flags().Float64Var(&flagRenderAspect, "aspect", 0, "Cell height relative to width (default: from settings)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	sc, err := loadScene()
	if err != nil {
		return err
	}

	selected := -1
	if flagRenderSelect != "" {
		if selected = sc.Index(flagRenderSelect); selected < 0 {
			return fmt.Errorf("%w: %q", scene.ErrUnknownShape, flagRenderSelect)
		}
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if flagRenderAspect > 0 {
		settings.View.Aspect = flagRenderAspect
	}

	cfg := core.RuntimeConfig{
		ScreenW: flagRenderW,
		ScreenH: flagRenderH,
		Aspect:  settings.View.Aspect,
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if cfg.ScreenW <= 0 {
			cfg.ScreenW = w
		}
		if cfg.ScreenH <= 0 {
			// leave room for the legend and the prompt
			cfg.ScreenH = h - 2
		}
	}
	cfg = cfg.Normalize()
	logger.Debug("render", "scene", sc.Name, "w", cfg.ScreenW, "h", cfg.ScreenH)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	vp := tui.FitScene(sc, cfg.ScreenW, cfg.ScreenH, cfg.Aspect)
	tui.DrawScene(screen, vp, sc, selected)

	out := cmd.OutOrStdout()
	if flagRenderPlain {
		fmt.Fprintln(out, screen.String())
		return nil
	}

	fmt.Fprintln(out, tui.RenderScreen(screen))
	legend := make([]string, 0, sc.Len())
	for _, it := range sc.Items {
		legend = append(legend, tui.StyleFor(it.Color).Render("█ "+it.Name))
	}
	fmt.Fprintln(out, strings.Join(legend, "  "))
	return nil
}
