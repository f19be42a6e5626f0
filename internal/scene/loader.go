package scene

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

//go:embed defaults/default.yaml
var defaultSceneYAML []byte

// Default returns the embedded demo scene.
func Default() Scene {
	s, err := Parse(defaultSceneYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default is invalid: %v", err))
	}
	return s
}

// Load reads a scene.
// Search order: customPath -> ~/.sigep/scenes/default.yaml -> ./scenes/default.yaml -> embedded default
//
// Only an explicit customPath can fail; the fallbacks are skipped when
// missing or invalid. logger may be nil.
func Load(customPath string, logger *log.Logger) (Scene, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Scene{}, fmt.Errorf("scene: read %s: %w", customPath, err)
		}
		s, err := Parse(data)
		if err != nil {
			return Scene{}, fmt.Errorf("%s: %w", customPath, err)
		}
		logger.Debug("loaded scene", "path", customPath, "shapes", s.Len())
		return s, nil
	}

	for _, path := range searchPaths("default.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s, err := Parse(data)
		if err != nil {
			logger.Warn("skipping invalid scene", "path", path, "error", err)
			continue
		}
		logger.Debug("loaded scene", "path", path, "shapes", s.Len())
		return s, nil
	}

	logger.Debug("using embedded default scene")
	return Default(), nil
}

// searchPaths lists the fallback locations for a scene file.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".sigep", "scenes", filename))
	}
	return append(paths, filepath.Join("scenes", filename))
}
