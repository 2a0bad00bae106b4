package ports

import "testing"

func TestFormatFromPath(t *testing.T) {
	cases := map[string]ImageFormat{
		"out.png":         FormatPNG,
		"out.PNG":         FormatPNG,
		"photo.jpg":       FormatJPEG,
		"photo.jpeg":      FormatJPEG,
		"dir.v2/scan.bmp": FormatBMP,
		"anim.gif":        FormatGIF,
		"vector.svg":      FormatUnknown,
		"no-extension":    FormatUnknown,
	}

	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("debug") != LevelDebug {
		t.Error("expected debug level")
	}
	if ParseLogLevel("quiet") != LevelQuiet {
		t.Error("expected quiet level")
	}
	if ParseLogLevel("bogus") != LevelInfo {
		t.Error("expected unknown level to fall back to info")
	}
	if LevelWarn.String() != "warn" {
		t.Errorf("expected warn, got %s", LevelWarn.String())
	}
}
