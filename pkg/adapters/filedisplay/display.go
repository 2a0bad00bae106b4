// Package filedisplay shows previews by writing them as PNG files.
package filedisplay

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/watermark/pkg/ports"
)

// PreviewName is the file rewritten on every update.
const PreviewName = "preview.png"

// Display writes each preview to baseDir/preview.png. With history
// enabled it also keeps numbered copies under baseDir/frames.
type Display struct {
	baseDir  string
	history  bool
	count    int
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a Display rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Display {
	return &Display{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("display"),
	}
}

// WithHistory enables numbered per-update copies.
func (d *Display) WithHistory() *Display {
	d.history = true
	return d
}

// Path returns the location of the current preview file.
func (d *Display) Path() string {
	return filepath.Join(d.baseDir, PreviewName)
}

// Show encodes img as PNG and writes it out.
func (d *Display) Show(img image.Image) error {
	data, err := d.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	if err := d.fs.MkdirAll(d.baseDir); err != nil {
		return err
	}
	if err := d.fs.WriteFile(d.Path(), data); err != nil {
		return err
	}

	if d.history {
		dir := filepath.Join(d.baseDir, "frames")
		if err := d.fs.MkdirAll(dir); err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("preview-%04d.png", d.count))
		if err := d.fs.WriteFile(path, data); err != nil {
			return err
		}
	}
	d.count++

	d.logger.Debug("Preview written to %s", d.Path())
	return nil
}

// Count returns how many previews have been shown.
func (d *Display) Count() int {
	return d.count
}

var _ ports.Display = (*Display)(nil)
