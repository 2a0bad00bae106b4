package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/user/watermark/pkg/baseimage"
	"github.com/user/watermark/pkg/style"
)

// ParseCommand turns one console line into an Event. Blank lines and
// lines starting with # yield a nil Event and no error.
func ParseCommand(line string) (Event, error) {
	raw := strings.TrimRight(line, "\r\n")
	line = strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "open":
		return OpenRequested{Path: rest}, nil
	case "text":
		// Only the separator after the command word is dropped; the
		// text itself is kept verbatim.
		_, text, _ := strings.Cut(strings.TrimLeft(raw, " \t"), " ")
		return TextChanged{Text: text}, nil
	case "size":
		n, err := strconv.Atoi(rest)
		if err != nil || !style.IsFontSizeOption(n) {
			return nil, fmt.Errorf("%w: %q is not a listed size", style.ErrInvalidFontSize, rest)
		}
		return FontSizeSelected{Size: n}, nil
	case "color", "colour":
		return ColorSelected{Name: rest}, nil
	case "opacity":
		dir, err := style.ParseDirection(rest)
		if err != nil {
			return nil, err
		}
		return OpacityChanged{Direction: dir}, nil
	case "rotate":
		dir, err := style.ParseDirection(rest)
		if err != nil {
			return nil, err
		}
		return RotateRequested{Direction: dir}, nil
	case "move":
		dir, err := style.ParseDirection(rest)
		if err != nil {
			return nil, err
		}
		return MoveRequested{Direction: dir}, nil
	case "export", "save":
		return ExportRequested{Path: rest}, nil
	case "show":
		return ShowRequested{}, nil
	case "quit", "exit":
		return QuitRequested{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line in the background. Nothing else reads r until
// the result arrives, so dialogs can share r between commands. When ctx
// is cancelled first the goroutine stays blocked until input arrives.
func readLine(r *bufio.Reader) <-chan readResult {
	ch := make(chan readResult, 1)
	go func() {
		line, err := r.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()
	return ch
}

// Run reads commands from r until quit, end of input or cancellation of
// ctx. Cancellation also ends a wait for input. Failed commands are
// logged and the loop continues.
func (s *Session) Run(ctx context.Context, r *bufio.Reader) error {
	if err := s.Refresh(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		var readErr error
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-readLine(r):
			line, readErr = res.line, res.err
		}
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read command: %w", readErr)
		}

		ev, err := ParseCommand(line)
		switch {
		case err != nil:
			s.report(err)
		case ev == nil:
		default:
			if _, ok := ev.(QuitRequested); ok {
				s.logger.Info("Goodbye")
				return nil
			}
			if err := s.Dispatch(ev); err != nil {
				s.report(err)
			}
		}

		if errors.Is(readErr, io.EOF) {
			return nil
		}
	}
}

func (s *Session) report(err error) {
	var invalid *baseimage.InvalidImageError
	switch {
	case errors.As(err, &invalid):
		s.logger.Warn("Invalid image: %s", invalid.Path)
	case errors.Is(err, ErrNoImage):
		s.logger.Warn("Open an image before exporting")
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, style.ErrInvalidFontSize),
		errors.Is(err, style.ErrUnknownColor),
		errors.Is(err, style.ErrInvalidDirection),
		errors.Is(err, ErrUnsupportedFormat):
		s.logger.Warn("Command failed: %s", err)
	default:
		s.logger.Error("Command failed: %s", err)
	}
}
