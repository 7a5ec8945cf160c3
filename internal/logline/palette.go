package logline

// ansiPalette maps SGR foreground codes (30-37 normal, 90-97 bright) to hex
// colors. Fixed: saved logs depend on these exact values.
var ansiPalette = map[int]string{
	30: "#000000", 31: "#ff4d4d", 32: "#00ff00", 33: "#ffff00",
	34: "#4da3ff", 35: "#ff66ff", 36: "#00ffff", 37: "#e0e0e0",
	90: "#808080", 91: "#ff8080", 92: "#80ff80", 93: "#ffff80",
	94: "#a0c8ff", 95: "#ff9cff", 96: "#a0ffff", 97: "#ffffff",
}

// categoryColors is the fallback color per severity for lines without ANSI
// styling. CategoryANSI has no entry; those lines carry their own colors.
var categoryColors = map[Category]string{
	CategoryError:   "#FF0000",
	CategoryWarning: "#FFFF00",
	CategoryInfo:    "#00FF00",
	CategoryDebug:   "#00FFFF",
	CategoryVerbose: "#808080",
	CategoryDefault: "#e0e0e0",
}

// PaletteColor returns the hex color for an SGR foreground code, or the
// default text color when the code is outside the palette.
func PaletteColor(code int) string {
	if c, ok := ansiPalette[code]; ok {
		return c
	}
	return categoryColors[CategoryDefault]
}

// Color returns the display color for the category. Unknown categories (and
// CategoryANSI, which bypasses the table) fall back to the default color.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryDefault]
}
