package services

import (
	"time"

	"inventoryplanner/store"
)

// SummaryData holds everything a project summary document shows.
type SummaryData struct {
	ProjectName string
	ClientName  string
	CreatedDate string
	Currency    string
	// CompanyName, when set, heads the PDF export.
	CompanyName string

	Stats     Stats
	Lines     []RollupLine
	BaseTotal float64

	InstallationAmount  float64
	InstallationPercent float64
	GrandTotal          float64

	Areas []AreaSummary
}

// BuildSummary aggregates project against catalog. Installation fields start
// at zero with GrandTotal equal to BaseTotal; see ApplyInstallation.
func BuildSummary(project store.Project, clientName string, catalog ProductCatalog) SummaryData {
	lines, base := ResolveRollup(RollupQuantities(project.Structure), catalog)
	return SummaryData{
		ProjectName: project.Name,
		ClientName:  clientName,
		Stats:       ComputeStats(project.Structure),
		Lines:       lines,
		BaseTotal:   base,
		GrandTotal:  base,
		Areas:       AreaBreakdown(project.Structure, catalog),
	}
}

// SummaryOptions carries the presentation settings and the raw installation
// input of a summary. A non-empty InstallationAmount wins over
// InstallationPercent.
type SummaryOptions struct {
	Currency    string
	CompanyName string
	// DateFormat is a Go time layout for CreatedDate.
	DateFormat string

	InstallationAmount  string
	InstallationPercent string
}

// ProjectSummary loads a project with its client from s and builds its
// summary. It reports false when the project does not exist. A missing
// client leaves ClientName empty.
func ProjectSummary(s *store.Store, projectID string, opts SummaryOptions) (SummaryData, bool) {
	project, ok := s.GetProject(projectID)
	if !ok {
		return SummaryData{}, false
	}

	var clientName string
	if c, ok := s.GetClient(project.ClientID); ok {
		clientName = c.Name
	}

	data := BuildSummary(project, clientName, s)
	data.Currency = opts.Currency
	data.CompanyName = opts.CompanyName
	data.CreatedDate = time.Now().Format(opts.DateFormat)

	inst := NewInstallationCost(data.BaseTotal)
	if opts.InstallationAmount != "" {
		inst.SetAmountInput(opts.InstallationAmount)
	} else {
		inst.SetPercentInput(opts.InstallationPercent)
	}
	data.ApplyInstallation(inst)
	return data, true
}

// ApplyInstallation copies the calculator's current state into d.
func (d *SummaryData) ApplyInstallation(c *InstallationCost) {
	d.InstallationAmount = c.Amount()
	d.InstallationPercent = c.Percent()
	d.GrandTotal = c.GrandTotal()
}

func (d SummaryData) money(v float64) string {
	return FormatMoney(d.Currency, v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
