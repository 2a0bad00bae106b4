// Package compositor burns a styled text watermark into a base image.
//
// The same routine serves the 640px preview and the full-resolution
// export: at full scale the font size and anchor are multiplied by the
// base image's resize ratio, so both renders place the watermark at the
// same relative position.
package compositor

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/user/watermark/pkg/baseimage"
	"github.com/user/watermark/pkg/ports"
	"github.com/user/watermark/pkg/style"
)

// Scale selects the working buffer of a render.
type Scale int

const (
	// ScalePreview renders onto the 640px preview buffer.
	ScalePreview Scale = iota
	// ScaleFull renders onto the original buffer.
	ScaleFull
)

// String returns the scale name.
func (s Scale) String() string {
	if s == ScaleFull {
		return "full"
	}
	return "preview"
}

// Placement describes where a watermark layer lands on the working buffer.
type Placement struct {
	FontSize int
	Anchor   image.Point // scaled anchor before rotation correction
	Offset   image.Point // half the growth of the layer caused by rotation
	Bounds   image.Rectangle
}

// Compositor renders watermarks through a ports.Renderer.
type Compositor struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// New creates a Compositor.
func New(renderer ports.Renderer, logger ports.Logger) *Compositor {
	return &Compositor{
		renderer: renderer,
		logger:   logger.WithComponent("compositor"),
	}
}

// Render returns a new image holding the selected buffer of base with the
// watermark described by st pasted on. base is never modified.
func (c *Compositor) Render(base *baseimage.BaseImage, st style.Style, scale Scale) (*image.NRGBA, error) {
	out, _, err := c.render(base, st, scale)
	return out, err
}

// RenderWithPlacement is Render that also reports where the layer landed.
// The placement is zero when nothing was drawn.
func (c *Compositor) RenderWithPlacement(base *baseimage.BaseImage, st style.Style, scale Scale) (*image.NRGBA, Placement, error) {
	return c.render(base, st, scale)
}

func (c *Compositor) render(base *baseimage.BaseImage, st style.Style, scale Scale) (*image.NRGBA, Placement, error) {
	work, ratio := base.Preview, 1.0
	if scale == ScaleFull {
		work, ratio = base.Original, base.ResizeRatio()
	}
	out := imaging.Clone(work)

	if st.Text == "" {
		return out, Placement{}, nil
	}

	fontSize, anchor := scaleToBuffer(st, scale, ratio)
	layer, err := c.renderer.RasterizeText(st.Text, ports.TextStyle{FontSize: fontSize, Color: st.Fill()})
	if err != nil {
		return nil, Placement{}, fmt.Errorf("rasterize text: %w", err)
	}
	if layer == nil {
		return out, Placement{}, nil
	}

	rotated := c.renderer.RotateImage(layer, float64(st.RotationDegrees))
	offset := image.Pt(
		floorHalf(rotated.Bounds().Dx()-layer.Bounds().Dx()),
		floorHalf(rotated.Bounds().Dy()-layer.Bounds().Dy()),
	)

	at := anchor.Sub(offset)
	dst := image.Rectangle{Min: at, Max: at.Add(rotated.Bounds().Size())}
	draw.Draw(out, dst, rotated, rotated.Bounds().Min, draw.Over)

	c.logger.Debug("Rendered %s watermark: size %d at (%d,%d), layer %dx%d",
		scale, fontSize, dst.Min.X, dst.Min.Y, dst.Dx(), dst.Dy())

	return out, Placement{FontSize: fontSize, Anchor: anchor, Offset: offset, Bounds: dst}, nil
}

// scaleToBuffer converts the preview-space font size and anchor into the
// working buffer's coordinate space.
func scaleToBuffer(st style.Style, scale Scale, ratio float64) (int, image.Point) {
	if scale != ScaleFull {
		return st.FontSize, st.Anchor
	}
	size := int(math.Round(float64(st.FontSize) * ratio))
	if size < 1 {
		size = 1
	}
	anchor := image.Pt(
		int(math.Round(float64(st.Anchor.X)*ratio)),
		int(math.Round(float64(st.Anchor.Y)*ratio)),
	)
	return size, anchor
}

// floorHalf divides by two rounding toward negative infinity.
func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}
