package view

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// DefaultCurrency is used when no symbol is configured.
const DefaultCurrency = "₹"

// FormatMoney renders an amount with thousands separators and two decimals,
// e.g. 1234567.5 -> "₹1,234,567.50".
func FormatMoney(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatMoney(symbol, -v)
	}
	return symbol + humanize.FormatFloat("#,###.##", v)
}

// FormatPercent formats a 0-100 share with two decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// FormatCount formats a row count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
