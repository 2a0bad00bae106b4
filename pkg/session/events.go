package session

import "github.com/user/watermark/pkg/style"

// Event is a user action delivered to Session.Dispatch.
type Event interface {
	event()
}

// TextChanged replaces the watermark text.
type TextChanged struct{ Text string }

// FontSizeSelected picks a new font size in preview pixels.
type FontSizeSelected struct{ Size int }

// ColorSelected picks one of the named colors.
type ColorSelected struct{ Name string }

// OpacityChanged raises (Up) or lowers (Down) the opacity by one step.
type OpacityChanged struct{ Direction style.Direction }

// RotateRequested turns the text by one step. Right is clockwise.
type RotateRequested struct{ Direction style.Direction }

// MoveRequested nudges the anchor by one step.
type MoveRequested struct{ Direction style.Direction }

// OpenRequested loads a base image. An empty Path asks the Dialog.
type OpenRequested struct{ Path string }

// ExportRequested writes the full-resolution result. An empty Path asks
// the Dialog.
type ExportRequested struct{ Path string }

// ShowRequested re-renders the preview without changing anything.
type ShowRequested struct{}

// QuitRequested ends the console loop.
type QuitRequested struct{}

func (TextChanged) event()      {}
func (FontSizeSelected) event() {}
func (ColorSelected) event()    {}
func (OpacityChanged) event()   {}
func (RotateRequested) event()  {}
func (MoveRequested) event()    {}
func (OpenRequested) event()    {}
func (ExportRequested) event()  {}
func (ShowRequested) event()    {}
func (QuitRequested) event()    {}
