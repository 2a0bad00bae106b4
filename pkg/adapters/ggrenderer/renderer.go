// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/user/watermark/pkg/fonts"
	"github.com/user/watermark/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts *fonts.Library
}

// New creates a new Renderer drawing text with the given font library.
func New(lib *fonts.Library) *Renderer {
	return &Renderer{fonts: lib}
}

// DecodeImage decodes PNG, JPEG, GIF or BMP data.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// EncodeImage encodes an image to the specified format.
// JPEG and BMP output is flattened to opaque RGB first; BMP readers
// treat 32-bit pixels as opaque, so alpha would not survive anyway.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, Flatten(img), opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, Flatten(img)); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	case ports.FormatGIF:
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, fmt.Errorf("encode GIF: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// RasterizeText draws text onto a transparent layer whose width is the
// text advance and whose height is the face's ascent plus descent.
func (r *Renderer) RasterizeText(text string, style ports.TextStyle) (image.Image, error) {
	if style.FontSize <= 0 {
		return nil, fmt.Errorf("invalid font size: %d", style.FontSize)
	}
	face := r.fonts.Face(style.FontSize)
	metrics := face.Metrics()

	width := font.MeasureString(face, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	if width <= 0 || height <= 0 {
		return nil, nil
	}

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetColor(style.Color)
	dc.DrawString(text, 0, float64(metrics.Ascent.Ceil()))
	return dc.Image(), nil
}

// RotateImage rotates clockwise by degrees with an expanded, transparent
// background.
func (r *Renderer) RotateImage(img image.Image, degrees float64) image.Image {
	// imaging rotates counter-clockwise for positive angles.
	return imaging.Rotate(img, -degrees, color.Transparent)
}

// Flatten drops the alpha channel, keeping each pixel's straight RGB values.
func Flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return dst
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
