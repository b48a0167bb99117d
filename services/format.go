package services

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatMoney renders amount with thousands separators and exactly two
// decimals, prefixed by symbol (e.g. "$1,234.50").
func FormatMoney(symbol string, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + humanize.FormatFloat("#,###.##", round2(amount))
}

// FormatPercent renders p with two decimals, like "12.50%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

var filenameReplacer = strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "")

// SanitizeFilename replaces characters that are unsafe in file and download
// names.
func SanitizeFilename(s string) string {
	return filenameReplacer.Replace(s)
}
