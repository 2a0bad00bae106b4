// Package nulldisplay provides a display that discards previews.
package nulldisplay

import (
	"image"

	"github.com/user/watermark/pkg/ports"
)

// Display is a no-op implementation of ports.Display, used by the
// one-shot apply command where no preview is wanted.
type Display struct{}

// New creates a new null Display.
func New() *Display {
	return &Display{}
}

// Show does nothing.
func (d *Display) Show(img image.Image) error {
	return nil
}

var _ ports.Display = (*Display)(nil)
