package promptdialog

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/user/watermark/pkg/ports"
)

func newDialog(input string) (*Dialog, *bytes.Buffer) {
	var out bytes.Buffer
	return New(bufio.NewReader(strings.NewReader(input)), &out), &out
}

func TestDialog_OpenPath(t *testing.T) {
	d, out := newDialog("  photos/cat.jpg \n")

	path, err := d.OpenPath()
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	if path != "photos/cat.jpg" {
		t.Errorf("expected trimmed path, got %q", path)
	}
	if out.String() != "Open file: " {
		t.Errorf("unexpected prompt %q", out.String())
	}
}

func TestDialog_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", "\n"},
		{"whitespace", "   \n"},
		{"end of input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newDialog(tt.input)
			if _, err := d.OpenPath(); !errors.Is(err, ports.ErrUserCancelled) {
				t.Errorf("expected ErrUserCancelled, got %v", err)
			}
		})
	}
}

func TestDialog_SavePathDefaultExtension(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"out\n", "out.png"},
		{"out.jpg\n", "out.jpg"},
		{"dir/marked.bmp\n", "dir/marked.bmp"},
	}

	for _, tt := range tests {
		d, out := newDialog(tt.input)
		got, err := d.SavePath("png")
		if err != nil {
			t.Fatalf("SavePath(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("SavePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if out.String() != "Save as: " {
			t.Errorf("unexpected prompt %q", out.String())
		}
	}
}

func TestDialog_SharedReader(t *testing.T) {
	d, _ := newDialog("a.png\nb.png\n")

	first, _ := d.OpenPath()
	second, _ := d.SavePath("png")
	if first != "a.png" || second != "b.png" {
		t.Errorf("expected sequential answers, got %q and %q", first, second)
	}
}
