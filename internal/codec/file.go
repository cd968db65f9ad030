package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"lifelab/internal/grid"
)

// Load reads a grid from path, choosing the codec by extension: .gol for
// the plain-text layout, .bgol for the packed binary layout.
func Load(path string) (*grid.Grid, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gol":
		return LoadText(path)
	case ".bgol":
		return LoadBinary(path)
	default:
		return nil, fmt.Errorf("codec: %q: %w", ext, ErrUnknownExtension)
	}
}

// Save writes a grid to path, choosing the codec by extension as Load does.
func Save(path string, g *grid.Grid) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gol":
		return SaveText(path, g)
	case ".bgol":
		return SaveBinary(path, g)
	default:
		return fmt.Errorf("codec: %q: %w", ext, ErrUnknownExtension)
	}
}
