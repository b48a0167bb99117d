package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/config"
	"inventoryplanner/services"
	"inventoryplanner/store"
)

// summaryFilename builds "<Project>_Summary_<date>.<ext>".
func summaryFilename(projectName, ext string) string {
	return fmt.Sprintf("%s_Summary_%s.%s",
		services.SanitizeFilename(projectName), time.Now().Format("2006-01-02"), ext)
}

// HandleSummaryExportExcel downloads the project summary as a workbook.
// Installation cost is taken from the same query parameters as the JSON
// summary.
// Route: GET /projects/{id}/export/excel
func HandleSummaryExportExcel(s *store.Store, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := buildProjectSummary(s, cfg, e.Request.PathValue("id"), e.Request.URL.Query())
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}

		xlsxBytes, err := services.GenerateSummaryExcel(data)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, summaryFilename(data.ProjectName, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleSummaryExportPDF downloads the project summary as a PDF.
// Route: GET /projects/{id}/export/pdf
func HandleSummaryExportPDF(s *store.Store, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, ok := buildProjectSummary(s, cfg, e.Request.PathValue("id"), e.Request.URL.Query())
		if !ok {
			return ErrorJSON(e, http.StatusNotFound, "Project not found")
		}

		pdfBytes, err := services.GenerateSummaryPDF(data)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, summaryFilename(data.ProjectName, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
