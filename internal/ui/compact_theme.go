package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme defines a compact theme for the UI with reduced padding and
// font sizes, so the option form and the log console fit one window without
// scrolling the form itself. Accent colors follow the Spotify palette.
type CompactTheme struct{}

// NewCompactTheme builds the application theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Spotify brand colors
var (
	spotifyGreen      = color.RGBA{R: 29, G: 185, B: 84, A: 255}
	spotifyGreenLight = color.RGBA{R: 30, G: 215, B: 96, A: 255}
	spotifyBlack      = color.RGBA{R: 25, G: 20, B: 20, A: 255}
)

// compactSizes lists every size the compact theme shrinks relative to the
// default theme. Anything absent falls through to the default.
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// Color maps the branded and semantic colors, deferring the rest
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return spotifyGreen
	case theme.ColorNameSuccess:
		return spotifyGreen
	case theme.ColorNameError:
		return color.RGBA{R: 229, G: 57, B: 53, A: 255} // failed runs
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case theme.ColorNameHyperlink:
		return spotifyGreenLight
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return spotifyBlack
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 242, G: 242, B: 242, A: 255}
		}
		return spotifyBlack
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font keeps the default fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon keeps the default icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size shrinks the sizes listed in compactSizes
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
