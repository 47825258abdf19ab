package render

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// dateLayouts are the shapes the backend has been seen to send.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon Jan 02 2006",
}

// Currency formats an amount in pesos, e.g. ₱1,234.50.
func Currency(v float64) string {
	if v < 0 {
		return "-" + CurrencySymbol + printer.Sprintf("%.2f", -v)
	}
	return CurrencySymbol + printer.Sprintf("%.2f", v)
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// ParseDate reads a backend date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date formats a backend date in medium style. Unparsable dates are shown as is.
func Date(s string) string {
	if s == "" {
		return NAValue
	}
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(DateLayout)
}

// NA returns NAValue if string is empty
func NA(s string) string {
	if s == "" {
		return NAValue
	}
	return s
}

// Truncate truncates a string to max runes
func Truncate(s string, max int) string {
	rr := []rune(s)
	if len(rr) <= max {
		return s
	}
	if max <= 1 {
		return string(rr[:max])
	}
	return string(rr[:max-1]) + "…"
}

// IntToStr converts int to string
func IntToStr(i int) string {
	return strconv.Itoa(i)
}
