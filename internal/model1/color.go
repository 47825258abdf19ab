package model1

import "github.com/derailed/tcell/v2"

var (
	// ModColor row modified color
	ModColor tcell.Color = tcell.ColorYellow

	// AddColor row added color
	AddColor tcell.Color = tcell.ColorBlue

	// PendingColor row pending color
	PendingColor tcell.Color = tcell.ColorDarkCyan

	// ErrColor row error color
	ErrColor tcell.Color = tcell.ColorRed

	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite

	// HighlightColor row highlight color
	HighlightColor tcell.Color = tcell.ColorAqua

	// LowStockColor row for products running out
	LowStockColor tcell.Color = tcell.ColorOrange
)

// ChartPalette backs chart series. Colors are picked by position.
var ChartPalette = []tcell.Color{
	tcell.ColorDodgerBlue,
	tcell.ColorMediumSeaGreen,
	tcell.ColorGold,
	tcell.ColorOrangeRed,
	tcell.ColorMediumPurple,
	tcell.ColorDarkCyan,
	tcell.ColorHotPink,
	tcell.ColorYellowGreen,
	tcell.ColorSandyBrown,
	tcell.ColorSlateGray,
}

// PaletteColor returns the chart color for the i-th series entry.
func PaletteColor(i int) tcell.Color {
	if i < 0 {
		i = -i
	}
	return ChartPalette[i%len(ChartPalette)]
}

// DefaultColorer set the default table row colors
func DefaultColorer(_ Header, re *RowEvent) tcell.Color {
	switch re.Kind {
	case EventAdd:
		return AddColor
	case EventUpdate:
		return ModColor
	default:
		return StdColor
	}
}
