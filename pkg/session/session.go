// Package session is the front-end controller. It owns the watermark
// style and the opened image, applies user events and keeps the preview
// display in sync.
package session

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/user/watermark/pkg/baseimage"
	"github.com/user/watermark/pkg/compositor"
	"github.com/user/watermark/pkg/ports"
	"github.com/user/watermark/pkg/style"
)

// DefaultExtension is appended to export paths that have none.
const DefaultExtension = "png"

var (
	ErrNoImage           = errors.New("no image is open")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrUnknownCommand    = errors.New("unknown command")
)

// Config contains the session settings.
type Config struct {
	JPEGQuality int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{JPEGQuality: 95}
}

// Session holds one style and at most one opened image.
type Session struct {
	config     Config
	style      style.Style
	base       *baseimage.BaseImage
	preview    *image.NRGBA
	compositor *compositor.Compositor
	renderer   ports.Renderer
	fs         ports.FileSystem
	dialog     ports.Dialog
	display    ports.Display
	logger     ports.Logger
}

// New creates a Session with the default style and no image.
func New(
	config Config,
	renderer ports.Renderer,
	fs ports.FileSystem,
	dialog ports.Dialog,
	display ports.Display,
	logger ports.Logger,
) *Session {
	return &Session{
		config:     config,
		style:      style.Default(),
		compositor: compositor.New(renderer, logger),
		renderer:   renderer,
		fs:         fs,
		dialog:     dialog,
		display:    display,
		logger:     logger.WithComponent("session"),
	}
}

// Style returns a copy of the current style.
func (s *Session) Style() style.Style {
	return s.style
}

// Base returns the opened image, or nil.
func (s *Session) Base() *baseimage.BaseImage {
	return s.base
}

// Preview returns the most recently rendered preview, or nil before the
// first render.
func (s *Session) Preview() *image.NRGBA {
	return s.preview
}

// Dispatch applies ev and re-renders the preview. Events that fail,
// including a failed re-render, leave the style as it was.
func (s *Session) Dispatch(ev Event) error {
	prev := s.style
	switch e := ev.(type) {
	case TextChanged:
		s.style.SetText(e.Text)
	case FontSizeSelected:
		if err := s.style.SetFontSize(e.Size); err != nil {
			return err
		}
	case ColorSelected:
		if err := s.style.SetColor(e.Name); err != nil {
			return err
		}
	case OpacityChanged:
		if err := s.style.AdjustOpacity(e.Direction); err != nil {
			return err
		}
	case RotateRequested:
		if err := s.style.Rotate(e.Direction); err != nil {
			return err
		}
	case MoveRequested:
		if err := s.style.Move(e.Direction); err != nil {
			return err
		}
	case OpenRequested:
		return s.Open(e.Path)
	case ExportRequested:
		_, err := s.Export(e.Path)
		return err
	case ShowRequested:
	case QuitRequested:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, ev)
	}
	if err := s.Refresh(); err != nil {
		s.style = prev
		return err
	}
	return nil
}

// SetStyle replaces the whole style and re-renders. The old style is
// kept when rendering fails.
func (s *Session) SetStyle(st style.Style) error {
	prev := s.style
	s.style = st
	if err := s.Refresh(); err != nil {
		s.style = prev
		return err
	}
	return nil
}

// Refresh renders the preview of the current image, or of the gray
// placeholder when none is open, and shows it.
func (s *Session) Refresh() error {
	base := s.base
	if base == nil {
		base = baseimage.Placeholder()
	}
	img, err := s.compositor.Render(base, s.style, compositor.ScalePreview)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	s.preview = img
	if err := s.display.Show(img); err != nil {
		return fmt.Errorf("show preview: %w", err)
	}
	s.logger.Debug("Preview updated")
	return nil
}

// Open loads path as the new base image. An empty path asks the Dialog;
// a cancelled dialog is a no-op. On failure the previous image is kept
// and a *baseimage.InvalidImageError is returned.
func (s *Session) Open(path string) error {
	if path == "" {
		p, err := s.dialog.OpenPath()
		if errors.Is(err, ports.ErrUserCancelled) {
			s.logger.Info("Open cancelled")
			return nil
		}
		if err != nil {
			return err
		}
		path = p
	}

	if !baseimage.SupportedExtension(path) {
		return &baseimage.InvalidImageError{Path: path, Err: baseimage.ErrUnsupportedExtension}
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return &baseimage.InvalidImageError{Path: path, Err: err}
	}
	base, err := baseimage.Decode(path, data, s.renderer, s.renderer)
	if err != nil {
		return err
	}

	s.base = base
	bounds := base.Original.Bounds()
	s.logger.Info("Opened %s (%dx%d)", path, bounds.Dx(), bounds.Dy())
	return s.Refresh()
}

// Export renders the watermark at full resolution and writes it to path,
// encoded by extension. It returns the written path, or "" when the
// dialog was cancelled.
func (s *Session) Export(path string) (string, error) {
	if s.base == nil {
		return "", ErrNoImage
	}

	if path == "" {
		p, err := s.dialog.SavePath(DefaultExtension)
		if errors.Is(err, ports.ErrUserCancelled) {
			s.logger.Info("Export cancelled")
			return "", nil
		}
		if err != nil {
			return "", err
		}
		path = p
	}
	if filepath.Ext(path) == "" {
		path += "." + DefaultExtension
	}

	format := ports.FormatFromPath(path)
	if format == ports.FormatUnknown {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	img, err := s.compositor.Render(s.base, s.style, compositor.ScaleFull)
	if err != nil {
		return "", fmt.Errorf("render export: %w", err)
	}
	data, err := s.renderer.EncodeImage(img, format, s.config.JPEGQuality)
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	exists, err := s.fs.Exists(path)
	if err != nil {
		return "", fmt.Errorf("check export: %w", err)
	}
	if exists {
		s.logger.Info("Overwriting %s", path)
	}
	if err := s.fs.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	s.logger.Info("Exported %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return path, nil
}
