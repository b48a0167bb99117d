package handlers

import (
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/config"
	"inventoryplanner/services"
	"inventoryplanner/store"
)

// summaryResponse is the JSON form of a project summary.
type summaryResponse struct {
	ProjectID           string                 `json:"projectId"`
	ProjectName         string                 `json:"projectName"`
	ClientName          string                 `json:"clientName"`
	Stats               services.Stats         `json:"stats"`
	Lines               []services.RollupLine  `json:"lines"`
	BaseTotal           float64                `json:"baseTotal"`
	InstallationAmount  float64                `json:"installationAmount"`
	InstallationPercent float64                `json:"installationPercent"`
	GrandTotal          float64                `json:"grandTotal"`
	Areas               []services.AreaSummary `json:"areas"`
}

// buildProjectSummary builds a project summary with the export settings
// from cfg and the installation cost from the query.
func buildProjectSummary(s *store.Store, cfg *config.Config, projectID string, q url.Values) (services.SummaryData, bool) {
	return services.ProjectSummary(s, projectID, services.SummaryOptions{
		Currency:            cfg.Export.Currency,
		CompanyName:         cfg.Export.CompanyName,
		DateFormat:          cfg.Export.DateFormat,
		InstallationAmount:  q.Get("installationAmount"),
		InstallationPercent: q.Get("installationPercent"),
	})
}

// HandleProjectSummary returns stats, the product rollup, totals and the
// per-area breakdown of a project.
// Route: GET /projects/{id}/summary
func HandleProjectSummary(s *store.Store, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := e.Request.PathValue("id")
		data, ok := buildProjectSummary(s, cfg, projectID, e.Request.URL.Query())
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}

		return e.JSON(http.StatusOK, summaryResponse{
			ProjectID:           projectID,
			ProjectName:         data.ProjectName,
			ClientName:          data.ClientName,
			Stats:               data.Stats,
			Lines:               listOf(data.Lines),
			BaseTotal:           data.BaseTotal,
			InstallationAmount:  data.InstallationAmount,
			InstallationPercent: data.InstallationPercent,
			GrandTotal:          data.GrandTotal,
			Areas:               listOf(data.Areas),
		})
	}
}
