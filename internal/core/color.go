package core

import "image/color"

// Color is a palette entry. The simulation names colors; each frontend maps
// them to terminal styles or RGBA values.
type Color uint8

// Palette used by game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBlack
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorMagenta
	ColorCyan
)

var palette = map[Color]color.RGBA{
	ColorDefault:  {0xff, 0xff, 0xff, 0xff},
	ColorWhite:    {0xff, 0xff, 0xff, 0xff},
	ColorGray:     {0xaa, 0xaa, 0xaa, 0xff},
	ColorDarkGray: {0x33, 0x33, 0x33, 0xff},
	ColorBlack:    {0x00, 0x00, 0x00, 0xff},
	ColorRed:      {0xff, 0x44, 0x44, 0xff},
	ColorOrange:   {0xff, 0x88, 0x44, 0xff},
	ColorYellow:   {0xff, 0xff, 0x44, 0xff},
	ColorGreen:    {0x44, 0xff, 0x44, 0xff},
	ColorBlue:     {0x44, 0x44, 0xff, 0xff},
	ColorMagenta:  {0xff, 0x44, 0xff, 0xff},
	ColorCyan:     {0x44, 0xff, 0xff, 0xff},
}

var colorNames = map[Color]string{
	ColorDefault:  "default",
	ColorWhite:    "white",
	ColorGray:     "gray",
	ColorDarkGray: "darkgray",
	ColorBlack:    "black",
	ColorRed:      "red",
	ColorOrange:   "orange",
	ColorYellow:   "yellow",
	ColorGreen:    "green",
	ColorBlue:     "blue",
	ColorMagenta:  "magenta",
	ColorCyan:     "cyan",
}

// RGBA returns the opaque RGBA value of the color.
func (c Color) RGBA() color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}

// String returns the palette name of the color.
func (c Color) String() string {
	if n, ok := colorNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseColor maps a palette name back to a Color. Unknown names yield
// ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
