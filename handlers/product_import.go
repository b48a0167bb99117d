package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"inventoryplanner/services"
	"inventoryplanner/store"
)

// importResponse reports what an upload contained and how many products
// were added. Imported stays 0 for a dry run.
type importResponse struct {
	*services.ImportResult
	Imported int  `json:"imported"`
	DryRun   bool `json:"dry_run"`
}

// HandleProductImport parses an uploaded CSV or XLSX catalog and adds every
// valid row in a single save, so either all of them land or none do. Rows
// with errors are reported and skipped. With ?dry_run=true
// the file is only validated.
// Route: POST /products/import
func HandleProductImport(s *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ParseProductFile(file, header.Filename)
		if err != nil {
			log.Printf("product_import: %v", err)
			return ErrorJSON(e, http.StatusBadRequest, err.Error())
		}

		resp := importResponse{ImportResult: result}
		if e.Request.URL.Query().Get("dry_run") == "true" {
			resp.DryRun = true
			return e.JSON(http.StatusOK, resp)
		}

		added, err := s.AddProducts(result.Products)
		if err != nil {
			log.Printf("product_import: add %d products: %v", len(result.Products), err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to save imported products")
		}
		resp.Imported = len(added)
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleProductTemplate downloads an empty import workbook.
// Route: GET /products/import/template
func HandleProductTemplate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateProductTemplate()
		if err != nil {
			log.Printf("product_template: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Failed to generate template")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="Product_Import_Template.xlsx"`)
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleProductErrorReport turns the errors of a previous import into a
// workbook.
// Route: POST /products/import/errors
func HandleProductErrorReport() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var errs []services.ValidationError
		if err := decodeJSON(e, &errs); err != nil {
			return ErrorJSON(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(errs)
		if err != nil {
			log.Printf("error_report: %v", err)
			return ErrorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Product_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
