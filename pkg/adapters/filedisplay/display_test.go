package filedisplay

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/watermark/pkg/adapters/logger"
	"github.com/user/watermark/pkg/mocks"
	"github.com/user/watermark/pkg/ports"
)

func TestDisplay_ShowWritesPreview(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			return []byte("png-bytes"), nil
		},
	}
	d := New("/tmp/out", fs, renderer, logger.NewNoop())

	if err := d.Show(image.NewNRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	if gotFormat != ports.FormatPNG {
		t.Errorf("expected PNG encoding, got %v", gotFormat)
	}
	data, ok := fs.GetFile(filepath.Join("/tmp/out", PreviewName))
	if !ok {
		t.Fatal("expected preview.png to be written")
	}
	if string(data) != "png-bytes" {
		t.Errorf("unexpected preview contents %q", data)
	}
	if d.Count() != 1 {
		t.Errorf("expected count 1, got %d", d.Count())
	}
}

func TestDisplay_History(t *testing.T) {
	fs := mocks.NewFileSystem()
	d := New("/tmp/out", fs, &mocks.Renderer{}, logger.NewNoop()).WithHistory()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 3; i++ {
		if err := d.Show(img); err != nil {
			t.Fatalf("Show %d failed: %v", i, err)
		}
	}

	for _, name := range []string{"preview-0000.png", "preview-0001.png", "preview-0002.png"} {
		if _, ok := fs.GetFile(filepath.Join("/tmp/out", "frames", name)); !ok {
			t.Errorf("expected %s to be written", name)
		}
	}
	if got := len(fs.Writes()); got != 6 {
		t.Errorf("expected 6 writes, got %d", got)
	}
}

func TestDisplay_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}
	d := New("/tmp/out", fs, renderer, logger.NewNoop())

	if err := d.Show(image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error")
	}
	if len(fs.Writes()) != 0 {
		t.Error("expected nothing written")
	}
}
