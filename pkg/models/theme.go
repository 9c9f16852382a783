package models

// Theme is the colour scheme preference of the extension UI
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Valid reports whether t is one of the known themes
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// OrDefault maps unknown themes to ThemeAuto
func (t Theme) OrDefault() Theme {
	if t.Valid() {
		return t
	}
	return ThemeAuto
}
