package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Project Summary"

// GenerateSummaryExcel renders the project summary workbook: header block,
// statistics, the product table with totals, then products grouped by area.
func GenerateSummaryExcel(data SummaryData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := summarySheet

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]

	widths := []float64{18, 32, 20, 16, 8, 14, 16, 10}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders("#667EEA"),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F9F9F9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorders("#CCCCCC"),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	centerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F9F9F9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders("#CCCCCC"),
	})
	if err != nil {
		return nil, fmt.Errorf("create center style: %w", err)
	}

	// NumFmt 4 is the built-in "#,##0.00".
	moneyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    4,
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#F9F9F9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorders("#CCCCCC"),
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    4,
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#FFF9E6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorders("#FFC107"),
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	grandTotalStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    4,
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#667EEA"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "right", Vertical: "center"},
		Border:    thinBorders("#667EEA"),
	})
	if err != nil {
		return nil, fmt.Errorf("create grand total style: %w", err)
	}

	// ── Header Rows (1-3) ───────────────────────────────────────────────

	header := []string{
		"Project: " + data.ProjectName,
		"Client: " + data.ClientName,
		"Date Generated: " + data.CreatedDate,
	}
	for i, line := range header {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.MergeCell(sheet, cell, fmt.Sprintf("%s%d", lastCol, i+1)); err != nil {
			return nil, fmt.Errorf("merge header row %d: %w", i+1, err)
		}
		f.SetCellValue(sheet, cell, sanitizeExcelCell(line))
	}
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)

	// ── Statistics (rows 5-6) ───────────────────────────────────────────

	f.SetCellValue(sheet, "A5", "Project Statistics")
	f.SetCellStyle(sheet, "A5", "A5", sectionStyle)
	f.SetCellValue(sheet, "A6", fmt.Sprintf("Levels: %d", data.Stats.Levels))
	f.SetCellValue(sheet, "B6", fmt.Sprintf("Areas: %d", data.Stats.Areas))
	f.SetCellValue(sheet, "C6", fmt.Sprintf("Products: %d", data.Stats.Products))

	// ── Products Summary ────────────────────────────────────────────────

	f.SetCellValue(sheet, "A8", "Complete Products Summary")
	f.SetCellStyle(sheet, "A8", "A8", sectionStyle)

	headers := []string{"No", "Product Name", "Company", "Type", "Qty", "Price", "Total", "Photo"}
	for i, h := range headers {
		f.SetCellValue(sheet, columns[i]+"9", h)
	}
	f.SetCellStyle(sheet, "A9", lastCol+"9", headerStyle)

	row := 10
	for i, line := range data.Lines {
		r := fmt.Sprint(row)
		photo := "-"
		if line.Product.ImageData != "" {
			photo = "[Image]"
		}

		f.SetCellValue(sheet, "A"+r, i+1)
		f.SetCellValue(sheet, "B"+r, sanitizeExcelCell(line.Product.Name))
		f.SetCellValue(sheet, "C"+r, sanitizeExcelCell(orDash(line.Product.Company)))
		f.SetCellValue(sheet, "D"+r, sanitizeExcelCell(orDash(line.Product.Type)))
		f.SetCellValue(sheet, "E"+r, line.Quantity)
		f.SetCellValue(sheet, "F"+r, round2(line.Product.Price))
		f.SetCellValue(sheet, "G"+r, round2(line.LineTotal))
		f.SetCellValue(sheet, "H"+r, photo)

		f.SetCellStyle(sheet, "A"+r, "A"+r, centerStyle)
		f.SetCellStyle(sheet, "B"+r, "D"+r, textStyle)
		f.SetCellStyle(sheet, "E"+r, "E"+r, centerStyle)
		f.SetCellStyle(sheet, "F"+r, "G"+r, moneyStyle)
		f.SetCellStyle(sheet, "H"+r, "H"+r, centerStyle)
		row++
	}

	totals := []struct {
		label string
		value float64
		style int
	}{
		{"Total Price:", data.BaseTotal, totalStyle},
		{fmt.Sprintf("Installation Cost (%s):", FormatPercent(data.InstallationPercent)), data.InstallationAmount, totalStyle},
		{"Grand Total:", data.GrandTotal, grandTotalStyle},
	}
	for _, t := range totals {
		r := fmt.Sprint(row)
		if err := f.MergeCell(sheet, "A"+r, "F"+r); err != nil {
			return nil, fmt.Errorf("merge total row %s: %w", r, err)
		}
		f.SetCellValue(sheet, "A"+r, t.label)
		f.SetCellValue(sheet, "G"+r, round2(t.value))
		f.SetCellStyle(sheet, "A"+r, "G"+r, t.style)
		row++
	}

	// ── Products by Area ────────────────────────────────────────────────

	row++
	r := fmt.Sprint(row)
	f.SetCellValue(sheet, "A"+r, "Products by Area")
	f.SetCellStyle(sheet, "A"+r, "A"+r, sectionStyle)
	row++

	r = fmt.Sprint(row)
	for i, h := range []string{"Area Name", "Product", "Quantity", "Comment"} {
		f.SetCellValue(sheet, columns[i]+r, h)
	}
	f.SetCellStyle(sheet, "A"+r, "D"+r, headerStyle)
	row++

	if len(data.Areas) == 0 {
		r = fmt.Sprint(row)
		if err := f.MergeCell(sheet, "A"+r, "D"+r); err != nil {
			return nil, fmt.Errorf("merge empty areas row: %w", err)
		}
		f.SetCellValue(sheet, "A"+r, "No areas defined in this project")
		f.SetCellStyle(sheet, "A"+r, "D"+r, textStyle)
	}

	for _, area := range data.Areas {
		if len(area.Products) == 0 {
			r = fmt.Sprint(row)
			f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(area.Name))
			f.SetCellValue(sheet, "B"+r, "-")
			f.SetCellValue(sheet, "C"+r, "-")
			f.SetCellValue(sheet, "D"+r, "-")
			f.SetCellStyle(sheet, "A"+r, "D"+r, textStyle)
			row++
			continue
		}
		for i, ap := range area.Products {
			r = fmt.Sprint(row)
			if i == 0 {
				f.SetCellValue(sheet, "A"+r, sanitizeExcelCell(area.Name))
			}
			f.SetCellValue(sheet, "B"+r, sanitizeExcelCell(ap.Product.Name))
			f.SetCellValue(sheet, "C"+r, ap.Quantity)
			f.SetCellValue(sheet, "D"+r, sanitizeExcelCell(orDash(ap.Product.Comment)))
			f.SetCellStyle(sheet, "A"+r, "D"+r, textStyle)
			f.SetCellStyle(sheet, "C"+r, "C"+r, centerStyle)
			row++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		if s == "-" {
			return s
		}
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders of the given color on all four sides.
func thinBorders(color string) []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: color,
			Style: 1,
		}
	}
	return borders
}
