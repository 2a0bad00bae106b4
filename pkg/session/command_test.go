package session

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/user/watermark/pkg/style"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"open photos/my cat.jpg", OpenRequested{Path: "photos/my cat.jpg"}},
		{"open", OpenRequested{}},
		{"text  Draft  copy ", TextChanged{Text: " Draft  copy "}},
		{"text    ", TextChanged{Text: "   "}},
		{"  text Sample\r\n", TextChanged{Text: "Sample"}},
		{"text", TextChanged{}},
		{"size 50", FontSizeSelected{Size: 50}},
		{"color Purple", ColorSelected{Name: "Purple"}},
		{"opacity up", OpacityChanged{Direction: style.Up}},
		{"rotate LEFT", RotateRequested{Direction: style.Left}},
		{"move right", MoveRequested{Direction: style.Right}},
		{"export out.jpg", ExportRequested{Path: "out.jpg"}},
		{"export", ExportRequested{}},
		{"show", ShowRequested{}},
		{"quit", QuitRequested{}},
		{"", nil},
		{"   # a comment", nil},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		if err != nil {
			t.Errorf("ParseCommand(%q) error: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCommand(%q) = %#v, want %#v", tt.line, got, tt.want)
		}
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"dance", ErrUnknownCommand},
		{"size 51", style.ErrInvalidFontSize},
		{"size 200", style.ErrInvalidFontSize},
		{"size big", style.ErrInvalidFontSize},
		{"rotate", style.ErrInvalidDirection},
		{"move sideways", style.ErrInvalidDirection},
	}

	for _, tt := range tests {
		if _, err := ParseCommand(tt.line); !errors.Is(err, tt.want) {
			t.Errorf("ParseCommand(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestSession_RunScript(t *testing.T) {
	f := newFixture(t)
	f.fs.Seed("photo.png", pngBytes(t, 320, 240))

	script := strings.Join([]string{
		"# watermark a photo",
		"export early.png",
		"open photo.png",
		"dance",
		"text Confidential",
		"size 34",
		"color black",
		"rotate right",
		"export marked",
		"quit",
		"text never applied",
	}, "\n")

	if err := f.session.Run(context.Background(), bufio.NewReader(strings.NewReader(script))); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, ok := f.fs.GetFile("marked.png"); !ok {
		t.Error("expected marked.png to be exported")
	}
	if _, ok := f.fs.GetFile("early.png"); ok {
		t.Error("expected export before open to be refused")
	}
	st := f.session.Style()
	if st.Text != "Confidential" || st.FontSize != 34 || st.RotationDegrees != 5 {
		t.Errorf("unexpected style %+v", st)
	}
}

func TestSession_RunEndOfInputWithoutNewline(t *testing.T) {
	f := newFixture(t)

	if err := f.session.Run(context.Background(), bufio.NewReader(strings.NewReader("text last"))); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if f.session.Style().Text != "last" {
		t.Error("expected final unterminated line to be applied")
	}
}

func TestSession_RunCancelledWhileWaiting(t *testing.T) {
	f := newFixture(t)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- f.session.Run(ctx, bufio.NewReader(pr))
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestSession_RunCancelled(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.session.Run(ctx, bufio.NewReader(strings.NewReader("text ignored\n")))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if f.session.Style().Text != "" {
		t.Error("expected no command to run after cancellation")
	}
}
