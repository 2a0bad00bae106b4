package ports

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// DecodeImage decodes image data into an image.Image.
	// The format is detected from the data.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality is only used for JPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) *image.NRGBA

	// RasterizeText renders text into a transparent layer sized to the
	// text's bounding box. It returns nil when the text has no extent.
	RasterizeText(text string, style TextStyle) (image.Image, error)

	// RotateImage rotates an image clockwise by degrees around its center.
	// The result is enlarged so no content is clipped.
	RotateImage(img image.Image, degrees float64) image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize int // Pixel size of the face
	Color    color.NRGBA
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatJPEG ImageFormat = iota
	FormatPNG
	FormatBMP
	FormatGIF
	FormatUnknown
)

// String returns the canonical file extension of the format without the dot.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatGIF:
		return "gif"
	default:
		return "unknown"
	}
}

// FormatFromPath returns the image format implied by the file extension.
func FormatFromPath(path string) ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".png":
		return FormatPNG
	case ".bmp":
		return FormatBMP
	case ".gif":
		return FormatGIF
	default:
		return FormatUnknown
	}
}
