package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a solid fill colour for entities and screen cells.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// rgb holds the pixel value of each colour for pixel hosts.
var rgb = map[Color]color.RGBA{
	ColorDefault: {0, 0, 0, 255},
	ColorBlack:   {0, 0, 0, 255},
	ColorRed:     {255, 0, 0, 255},
	ColorGreen:   {0, 255, 0, 255},
	ColorYellow:  {255, 255, 0, 255},
	ColorBlue:    {0, 0, 255, 255},
	ColorMagenta: {255, 0, 255, 255},
	ColorCyan:    {0, 255, 255, 255},
	ColorWhite:   {255, 255, 255, 255},
	ColorOrange:  {255, 135, 0, 255},
	ColorGray:    {138, 138, 138, 255},
}

// String returns the colour name used in config files.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGBA returns the pixel value of the colour.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgb[c]; ok {
		return v
	}
	return rgb[ColorDefault]
}

// ParseColor resolves a colour name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// UnmarshalText lets colours be written by name in YAML.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText writes the colour name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
