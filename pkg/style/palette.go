package style

import "strings"

// ColorNames lists the selectable colors in front-end order.
var ColorNames = []string{"white", "black", "blue", "yellow", "green", "red", "purple", "orange", "brown"}

// palette holds the X11 values of ColorNames.
var palette = map[string]RGB{
	"white":  {255, 255, 255},
	"black":  {0, 0, 0},
	"blue":   {0, 0, 255},
	"yellow": {255, 255, 0},
	"green":  {0, 255, 0},
	"red":    {255, 0, 0},
	"purple": {160, 32, 240},
	"orange": {255, 165, 0},
	"brown":  {165, 42, 42},
}

// LookupColor resolves a color name, ignoring case.
func LookupColor(name string) (RGB, bool) {
	rgb, ok := palette[strings.ToLower(strings.TrimSpace(name))]
	return rgb, ok
}

// Font size dropdown bounds.
const (
	minFontSizeOption  = 10
	maxFontSizeOption  = 200 // exclusive
	fontSizeOptionStep = 4
)

// FontSizeOptions returns the selectable font sizes: 10, 14, ..., 198.
func FontSizeOptions() []int {
	sizes := make([]int, 0, (maxFontSizeOption-minFontSizeOption)/fontSizeOptionStep+1)
	for n := minFontSizeOption; n < maxFontSizeOption; n += fontSizeOptionStep {
		sizes = append(sizes, n)
	}
	return sizes
}

// IsFontSizeOption reports whether n is one of FontSizeOptions.
func IsFontSizeOption(n int) bool {
	return n >= minFontSizeOption && n < maxFontSizeOption && (n-minFontSizeOption)%fontSizeOptionStep == 0
}
