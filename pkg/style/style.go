// Package style holds the watermark style state edited by the front-end.
//
// A Style is plain data. Mutations never render; the session asks the
// compositor for a new preview after each one.
package style

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Step sizes of the front-end controls.
const (
	OpacityStep  = 5
	RotationStep = 5
	MoveStep     = 10
)

// Default values applied at startup.
const (
	DefaultFontSize = 50
	DefaultOpacity  = 25
	DefaultColor    = "white"
)

var (
	ErrInvalidFontSize  = errors.New("font size must be positive")
	ErrUnknownColor     = errors.New("unknown color")
	ErrInvalidDirection = errors.New("invalid direction")
)

// Direction is a control direction used by Rotate, Move and opacity changes.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// ParseDirection parses a direction name, ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Left, Right, Up, Down:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// RGB is a color triple with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Style is the current watermark configuration.
// Anchor and FontSize are expressed in preview coordinates.
type Style struct {
	Text            string
	FontSize        int
	Color           RGB
	Opacity         int
	RotationDegrees int // clockwise, in [0, 360)
	Anchor          image.Point
}

// Default returns the startup style.
func Default() Style {
	return Style{
		FontSize: DefaultFontSize,
		Color:    palette[DefaultColor],
		Opacity:  DefaultOpacity,
		Anchor:   image.Pt(50, 50),
	}
}

// Fill returns the effective RGBA fill: the color merged with the opacity.
func (s Style) Fill() color.NRGBA {
	return color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: uint8(clamp(s.Opacity, 0, 255))}
}

// SetText replaces the text. An empty string renders nothing.
func (s *Style) SetText(text string) {
	s.Text = text
}

// SetFontSize sets the preview-scale font size.
func (s *Style) SetFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFontSize, size)
	}
	s.FontSize = size
	return nil
}

// SetColor resolves a named color. The opacity is kept.
func (s *Style) SetColor(name string) error {
	rgb, ok := LookupColor(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	s.Color = rgb
	return nil
}

// ChangeOpacity adds delta to the opacity, clamped to [0, 255].
func (s *Style) ChangeOpacity(delta int) {
	s.Opacity = clamp(s.Opacity+delta, 0, 255)
}

// SetOpacity sets the opacity, clamped to [0, 255].
func (s *Style) SetOpacity(opacity int) {
	s.Opacity = clamp(opacity, 0, 255)
}

// AdjustOpacity raises (Up) or lowers (Down) the opacity by one step.
func (s *Style) AdjustOpacity(dir Direction) error {
	switch dir {
	case Up:
		s.ChangeOpacity(OpacityStep)
	case Down:
		s.ChangeOpacity(-OpacityStep)
	default:
		return fmt.Errorf("%w for opacity: %q", ErrInvalidDirection, dir)
	}
	return nil
}

// Rotate turns the watermark one step. Left is counter-clockwise on screen
// and decreases the stored angle; Right is clockwise and increases it.
func (s *Style) Rotate(dir Direction) error {
	switch dir {
	case Left:
		s.SetRotation(s.RotationDegrees - RotationStep)
	case Right:
		s.SetRotation(s.RotationDegrees + RotationStep)
	default:
		return fmt.Errorf("%w for rotation: %q", ErrInvalidDirection, dir)
	}
	return nil
}

// SetRotation sets the clockwise angle, normalised into [0, 360).
func (s *Style) SetRotation(degrees int) {
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	s.RotationDegrees = degrees
}

// Move shifts the anchor by one step. The anchor is not clamped, so the
// watermark may leave the canvas partially or entirely.
func (s *Style) Move(dir Direction) error {
	switch dir {
	case Up:
		s.Anchor.Y -= MoveStep
	case Down:
		s.Anchor.Y += MoveStep
	case Left:
		s.Anchor.X -= MoveStep
	case Right:
		s.Anchor.X += MoveStep
	default:
		return fmt.Errorf("%w for move: %q", ErrInvalidDirection, dir)
	}
	return nil
}

// SetAnchor places the watermark at (x, y) in preview coordinates.
func (s *Style) SetAnchor(x, y int) {
	s.Anchor = image.Pt(x, y)
}

// String describes the style for console output.
func (s Style) String() string {
	return fmt.Sprintf("text=%q size=%d color=#%02x%02x%02x opacity=%d rotation=%d anchor=(%d,%d)",
		s.Text, s.FontSize, s.Color.R, s.Color.G, s.Color.B, s.Opacity, s.RotationDegrees, s.Anchor.X, s.Anchor.Y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
