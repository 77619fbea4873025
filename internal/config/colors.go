package config

import "github.com/thenoetrevino/kanban/internal/config/colors"

// ThemePresets lists the names accepted by ColorSchemePreset
var ThemePresets = []string{"default", "monochrome"}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() colors.ColorScheme {
	return *colors.Monochrome()
}

// ColorSchemePreset returns the named preset, replacing any configured colors
func ColorSchemePreset(name string) (colors.ColorScheme, bool) {
	switch name {
	case "default":
		return DefaultColorScheme(), true
	case "monochrome":
		return MonochromeColorScheme(), true
	default:
		return colors.ColorScheme{}, false
	}
}
