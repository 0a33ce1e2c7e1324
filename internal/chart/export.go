package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/freqchart/internal/canvas"
)

// Default PNG export size in pixels.
const (
	DefaultExportWidth  = 1200
	DefaultExportHeight = 600
)

// WritePNG renders scene at width x height with the default layout and the
// given theme, and encodes it as PNG.
func WritePNG(w io.Writer, scene Scene, theme Theme, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid export size %dx%d", width, height)
	}
	r, err := canvas.NewRaster(width, height)
	if err != nil {
		return err
	}
	renderer := NewRenderer(DefaultLayout())
	renderer.Theme = theme
	renderer.Render(r, scene)
	return r.WritePNG(w)
}

// ExportPNG writes scene to a PNG file, creating its directory if needed.
func ExportPNG(path string, scene Scene, theme Theme, width, height int) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePNG(f, scene, theme, width, height); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
