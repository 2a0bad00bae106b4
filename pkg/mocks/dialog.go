package mocks

import (
	"image"

	"github.com/user/watermark/pkg/ports"
)

// Dialog is a mock implementation of ports.Dialog. Empty answers are
// reported as ports.ErrUserCancelled.
type Dialog struct {
	OpenAnswer string
	SaveAnswer string

	OpenCalls int
	SaveCalls int
}

func (m *Dialog) OpenPath() (string, error) {
	m.OpenCalls++
	if m.OpenAnswer == "" {
		return "", ports.ErrUserCancelled
	}
	return m.OpenAnswer, nil
}

func (m *Dialog) SavePath(defaultExt string) (string, error) {
	m.SaveCalls++
	if m.SaveAnswer == "" {
		return "", ports.ErrUserCancelled
	}
	return m.SaveAnswer, nil
}

var _ ports.Dialog = (*Dialog)(nil)

// Display records every image it is asked to show.
type Display struct {
	Frames   []image.Image
	ShowFunc func(img image.Image) error
}

func (m *Display) Show(img image.Image) error {
	if m.ShowFunc != nil {
		return m.ShowFunc(img)
	}
	m.Frames = append(m.Frames, img)
	return nil
}

// Last returns the most recently shown image, or nil.
func (m *Display) Last() image.Image {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}

var _ ports.Display = (*Display)(nil)
