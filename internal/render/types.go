package render

const (
	// Display values
	NAValue       = "n/a"
	NoDescription = "No description available."

	// CurrencySymbol prefixes every amount.
	CurrencySymbol = "₱"

	// DateLayout is the medium date style used across tables and panels.
	DateLayout = "Jan 2, 2006"
)
