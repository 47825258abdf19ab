// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of stockr

package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stockr/stockr/internal/config"
)

// Styles holds the colors every widget reads at render time. A theme switch
// reloads it in place. Styles are only touched on the UI goroutine.
type Styles struct {
	theme config.Theme

	Fg       tcell.Color
	Bg       tcell.Color
	Border   tcell.Color
	Focus    tcell.Color
	Title    tcell.Color
	Header   tcell.Color
	Muted    tcell.Color
	Mark     tcell.Color
	Cursor   tcell.Color
	Skeleton tcell.Color
	Info     tcell.Color
	Warn     tcell.Color
	Err      tcell.Color
	Key      tcell.Color
	Bar      tcell.Color
}

// NewStyles returns the styles of theme t.
func NewStyles(t config.Theme) *Styles {
	s := &Styles{}
	s.Load(t)
	return s
}

// Load switches to theme t. System is resolved against the terminal.
func (s *Styles) Load(t config.Theme) {
	s.theme = t.Resolve()
	if s.theme == config.ThemeLight {
		s.Fg, s.Bg = tcell.ColorBlack, tcell.ColorWhite
		s.Border, s.Focus, s.Title = tcell.ColorGray, tcell.ColorNavy, tcell.ColorNavy
		s.Header, s.Muted, s.Mark = tcell.ColorPurple, tcell.ColorGray, tcell.ColorDarkGreen
		s.Cursor, s.Skeleton = tcell.ColorLightSkyBlue, tcell.ColorSilver
		s.Info, s.Warn, s.Err = tcell.ColorDarkGreen, tcell.ColorDarkOrange, tcell.ColorRed
		s.Key, s.Bar = tcell.ColorDarkBlue, tcell.ColorSteelBlue
	} else {
		s.Fg, s.Bg = tcell.ColorWhite, tcell.ColorDefault
		s.Border, s.Focus, s.Title = tcell.ColorDarkCyan, tcell.ColorAqua, tcell.ColorAqua
		s.Header, s.Muted, s.Mark = tcell.ColorYellow, tcell.ColorGray, tcell.ColorGreenYellow
		s.Cursor, s.Skeleton = tcell.ColorDarkCyan, tcell.ColorDimGray
		s.Info, s.Warn, s.Err = tcell.ColorGreen, tcell.ColorYellow, tcell.ColorOrangeRed
		s.Key, s.Bar = tcell.ColorDodgerBlue, tcell.ColorDodgerBlue
	}
	s.install()
}

// Theme returns the resolved theme.
func (s *Styles) Theme() config.Theme {
	return s.theme
}

// install sets the tview defaults new primitives pick up.
func (s *Styles) install() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    s.Bg,
		ContrastBackgroundColor:     s.Cursor,
		MoreContrastBackgroundColor: s.Skeleton,
		BorderColor:                 s.Border,
		TitleColor:                  s.Title,
		GraphicsColor:               s.Border,
		PrimaryTextColor:            s.Fg,
		SecondaryTextColor:          s.Header,
		TertiaryTextColor:           s.Muted,
		InverseTextColor:            s.Bg,
		ContrastSecondaryTextColor:  s.Fg,
	}
}

// Tag returns the color as a tview color tag name.
func Tag(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "-"
	}
	return fmt.Sprintf("#%06x", c.Hex())
}
