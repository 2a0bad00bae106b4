package mocks

import (
	"image"

	"github.com/user/watermark/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	DecodeImageFunc   func(data []byte) (image.Image, error)
	EncodeImageFunc   func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc   func(img image.Image, width, height int) *image.NRGBA
	RasterizeTextFunc func(text string, style ports.TextStyle) (image.Image, error)
	RotateImageFunc   func(img image.Image, degrees float64) image.Image

	// Calls records the text styles passed to RasterizeText.
	Calls []ports.TextStyle
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewNRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) *image.NRGBA {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) RasterizeText(text string, style ports.TextStyle) (image.Image, error) {
	m.Calls = append(m.Calls, style)
	if m.RasterizeTextFunc != nil {
		return m.RasterizeTextFunc(text, style)
	}
	return image.NewNRGBA(image.Rect(0, 0, 10*len(text), style.FontSize)), nil
}

func (m *Renderer) RotateImage(img image.Image, degrees float64) image.Image {
	if m.RotateImageFunc != nil {
		return m.RotateImageFunc(img, degrees)
	}
	return img
}

var _ ports.Renderer = (*Renderer)(nil)
