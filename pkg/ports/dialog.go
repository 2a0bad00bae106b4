package ports

import (
	"errors"
	"image"
)

// ErrUserCancelled is returned by a Dialog when the user dismisses it
// without choosing a path. Callers treat it as a no-op.
var ErrUserCancelled = errors.New("dialog cancelled")

// Dialog abstracts the file-open and file-save prompts of the front-end.
type Dialog interface {
	// OpenPath asks for an image to open.
	OpenPath() (string, error)

	// SavePath asks for an export destination. defaultExt (without dot)
	// is appended when the answer has no extension.
	SavePath(defaultExt string) (string, error)
}

// Display shows the bitmap produced by the compositor.
type Display interface {
	// Show presents the preview image.
	Show(img image.Image) error
}
