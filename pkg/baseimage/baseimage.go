// Package baseimage holds the image being watermarked: the decoded original
// and the 640px-wide preview the style coordinates refer to.
package baseimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// PreviewWidth is the width of the preview buffer. Anchor and font size
// are expressed in this coordinate space.
const PreviewWidth = 640

// Placeholder dimensions shown before any image is opened.
const (
	placeholderWidth  = 640
	placeholderHeight = 480
)

var (
	ErrNotImage             = errors.New("content is not an image")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrEmptyImage           = errors.New("image has no pixels")
)

// InvalidImageError reports a file that cannot be used as a base image.
type InvalidImageError struct {
	Path string
	Err  error
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("%s is not a valid image file: %v", e.Path, e.Err)
}

func (e *InvalidImageError) Unwrap() error {
	return e.Err
}

// Extensions lists the file extensions accepted by Open.
var Extensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// SupportedExtension reports whether path has one of Extensions.
func SupportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Decoder decodes raw image bytes.
type Decoder interface {
	DecodeImage(data []byte) (image.Image, error)
}

// Resizer scales an image into a new NRGBA buffer.
type Resizer interface {
	ResizeImage(img image.Image, width, height int) *image.NRGBA
}

// BaseImage is an opened image. Both buffers are read-only once built.
type BaseImage struct {
	Path     string
	Original *image.NRGBA
	Preview  *image.NRGBA
}

// Decode sniffs and decodes data read from path. Anything that is not a
// decodable image yields an *InvalidImageError.
func Decode(path string, data []byte, dec Decoder, rs Resizer) (*BaseImage, error) {
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, &InvalidImageError{Path: path, Err: fmt.Errorf("%w: %s", ErrNotImage, mime.String())}
	}

	img, err := dec.DecodeImage(data)
	if err != nil {
		return nil, &InvalidImageError{Path: path, Err: err}
	}

	b, err := New(img, rs)
	if err != nil {
		return nil, &InvalidImageError{Path: path, Err: err}
	}
	b.Path = path
	return b, nil
}

// New builds a BaseImage from a decoded image.
func New(img image.Image, rs Resizer) (*BaseImage, error) {
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	original := imaging.Clone(img)
	w, h := PreviewSize(original.Bounds().Dx(), original.Bounds().Dy())
	return &BaseImage{
		Original: original,
		Preview:  rs.ResizeImage(original, w, h),
	}, nil
}

// Placeholder returns the gray canvas shown before an image is opened.
// Its original and preview buffers are the same size.
func Placeholder() *BaseImage {
	img := imaging.New(placeholderWidth, placeholderHeight, color.NRGBA{R: 190, G: 190, B: 190, A: 255})
	return &BaseImage{Original: img, Preview: img}
}

// PreviewSize returns the preview dimensions for an original of w x h.
func PreviewSize(w, h int) (int, int) {
	ph := int(math.Round(float64(PreviewWidth) * float64(h) / float64(w)))
	if ph < 1 {
		ph = 1
	}
	return PreviewWidth, ph
}

// ResizeRatio maps preview coordinates to original coordinates.
func (b *BaseImage) ResizeRatio() float64 {
	return float64(b.Original.Bounds().Dx()) / float64(b.Preview.Bounds().Dx())
}
