// Package fonts loads the watermark typeface and hands out sized faces.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Library holds one parsed TrueType font and caches faces per pixel size.
type Library struct {
	name  string
	font  *truetype.Font
	mu    sync.Mutex
	faces map[int]font.Face
}

// Default returns a Library backed by the embedded Go Bold font.
func Default() (*Library, error) {
	return parse("Go Bold", gobold.TTF)
}

// Load parses the TrueType font at path. An empty path selects the
// embedded default. A missing or malformed file is an error; callers
// abort startup on it.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return parse(path, data)
}

func parse(name string, data []byte) (*Library, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return &Library{
		name:  name,
		font:  f,
		faces: make(map[int]font.Face),
	}, nil
}

// Name returns the font file name, or the embedded font's name.
func (l *Library) Name() string {
	return l.name
}

// Face returns a face rendering size pixels per em (72 DPI).
func (l *Library) Face(size int) font.Face {
	l.mu.Lock()
	defer l.mu.Unlock()

	if face, ok := l.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(l.font, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	l.faces[size] = face
	return face
}
