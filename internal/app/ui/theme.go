package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// appTheme wraps the default theme and pins the variant when the user
// chose an explicit light or dark mode.
type appTheme struct {
	mode ColorTheme
}

func (t appTheme) Color(c fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch t.mode {
	case Dark:
		v = theme.VariantDark
	case Light:
		v = theme.VariantLight
	}
	return theme.DefaultTheme().Color(c, v)
}

func (appTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (appTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (appTheme) Size(s fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(s)
}
