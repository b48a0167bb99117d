// Package services turns a project structure into the numbers and
// documents shown to the user: stats, rollups, totals and exports.
package services

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"inventoryplanner/store"
)

// RollupLine is a rollup entry with its product resolved.
type RollupLine struct {
	Product   store.Product `json:"product"`
	Quantity  int           `json:"quantity"`
	LineTotal float64       `json:"lineTotal"`
}

func CalcLineTotal(price float64, qty int) float64 {
	return price * float64(qty)
}

// ResolveRollup looks up every rollup entry in catalog and returns the
// priced lines with their sum. Entries with no matching product are
// dropped and add nothing to the total.
func ResolveRollup(rollup []ProductQuantity, catalog ProductCatalog) ([]RollupLine, float64) {
	lines := make([]RollupLine, 0, len(rollup))
	var total float64
	for _, pq := range rollup {
		product, ok := catalog.GetProduct(pq.ProductID)
		if !ok {
			continue
		}
		line := RollupLine{
			Product:   product,
			Quantity:  pq.Quantity,
			LineTotal: CalcLineTotal(product.Price, pq.Quantity),
		}
		total += line.LineTotal
		lines = append(lines, line)
	}
	return lines, total
}

// leadingDecimal matches the plain decimal a price string starts with, so
// "12.5 USD" reads as 12.5. Exponents are not part of a price.
var leadingDecimal = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParsePrice coerces a user-entered price. Strings are read up to the end of
// their leading decimal. Anything that is not a finite, non-negative number
// becomes 0.
func ParsePrice(value any) float64 {
	if s, ok := value.(string); ok {
		m := leadingDecimal.FindString(s)
		if m == "" {
			return 0
		}
		value = strings.TrimSpace(m)
	}
	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
