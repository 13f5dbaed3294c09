package core

import "image/color"

// Color is a named foreground colour shared by the terminal and windowed
// frontends. The terminal uses the ANSI 256 index and the window uses the
// matching xterm RGB value.
type Color uint8

// Palette entries used by the shooter.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

type paletteEntry struct {
	ansi string
	rgba color.RGBA
}

var palette = [...]paletteEntry{
	ColorDefault:       {"", color.RGBA{229, 229, 229, 255}},
	ColorRed:           {"1", color.RGBA{205, 0, 0, 255}},
	ColorGreen:         {"2", color.RGBA{0, 205, 0, 255}},
	ColorYellow:        {"3", color.RGBA{205, 205, 0, 255}},
	ColorBlue:          {"4", color.RGBA{0, 0, 238, 255}},
	ColorMagenta:       {"5", color.RGBA{205, 0, 205, 255}},
	ColorCyan:          {"6", color.RGBA{0, 205, 205, 255}},
	ColorWhite:         {"7", color.RGBA{229, 229, 229, 255}},
	ColorBrightRed:     {"9", color.RGBA{255, 0, 0, 255}},
	ColorBrightGreen:   {"10", color.RGBA{0, 255, 0, 255}},
	ColorBrightYellow:  {"11", color.RGBA{255, 255, 0, 255}},
	ColorBrightBlue:    {"12", color.RGBA{92, 92, 255, 255}},
	ColorBrightMagenta: {"13", color.RGBA{255, 0, 255, 255}},
	ColorBrightCyan:    {"14", color.RGBA{0, 255, 255, 255}},
	ColorBrightWhite:   {"15", color.RGBA{255, 255, 255, 255}},
	ColorOrange:        {"208", color.RGBA{255, 135, 0, 255}},
	ColorGray:          {"245", color.RGBA{138, 138, 138, 255}},
}

func (c Color) entry() paletteEntry {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// ANSI returns the ANSI 256 colour index, or "" for the terminal default.
func (c Color) ANSI() string {
	return c.entry().ansi
}

// RGBA returns the colour for pixel rendering.
func (c Color) RGBA() color.RGBA {
	return c.entry().rgba
}
