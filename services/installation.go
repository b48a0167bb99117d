package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// InstallationCost keeps an installation amount and its percentage of a
// fixed base total consistent. Setting one recomputes the other, rounded to
// two decimals.
type InstallationCost struct {
	base    float64
	amount  float64
	percent float64
}

func NewInstallationCost(baseTotal float64) *InstallationCost {
	return &InstallationCost{base: baseTotal}
}

func (c *InstallationCost) Base() float64    { return c.base }
func (c *InstallationCost) Amount() float64  { return c.amount }
func (c *InstallationCost) Percent() float64 { return c.percent }

// SetAmount stores amount and derives the percentage. A zero base yields 0%.
func (c *InstallationCost) SetAmount(amount float64) {
	c.amount = amount
	if c.base == 0 {
		c.percent = 0
		return
	}
	c.percent = round2(amount / c.base * 100)
}

func (c *InstallationCost) SetPercent(percent float64) {
	c.percent = percent
	c.amount = round2(c.base * percent / 100)
}

// SetAmountInput parses a raw field value; non-numeric input counts as 0.
func (c *InstallationCost) SetAmountInput(raw string) {
	c.SetAmount(parseDecimal(raw))
}

func (c *InstallationCost) SetPercentInput(raw string) {
	c.SetPercent(parseDecimal(raw))
}

func (c *InstallationCost) GrandTotal() float64 {
	return c.base + c.amount
}

func parseDecimal(raw string) float64 {
	f, err := cast.ToFloat64E(strings.TrimSpace(raw))
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
