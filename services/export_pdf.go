package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	headerBg = &props.Color{Red: 102, Green: 126, Blue: 234}
	white    = &props.Color{Red: 255, Green: 255, Blue: 255}
	grey     = &props.Color{Red: 80, Green: 80, Blue: 80}
)

// GenerateSummaryPDF renders the same sections as GenerateSummaryExcel
// into a landscape A4 document.
func GenerateSummaryPDF(data SummaryData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addSummaryHeader(m, data)
	addProductTable(m, data)
	addTotals(m, data)
	addAreaTable(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addSummaryHeader(m core.Maroto, data SummaryData) {
	if data.CompanyName != "" {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(data.CompanyName, props.Text{
						Size:  10,
						Style: fontstyle.Bold,
						Align: align.Left,
						Color: grey,
					}),
				),
			),
		)
	}

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Project: "+data.ProjectName, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Client: "+data.ClientName, props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(6).Add(
				text.New("Date Generated: "+data.CreatedDate, props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	statText := props.Text{Size: 9, Align: align.Left}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New(fmt.Sprintf("Levels: %d", data.Stats.Levels), statText)),
			col.New(4).Add(text.New(fmt.Sprintf("Areas: %d", data.Stats.Areas), statText)),
			col.New(4).Add(text.New(fmt.Sprintf("Products: %d", data.Stats.Products), statText)),
		),
	)

	m.AddRows(row.New(4))
}

func sectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
}

// headerRow renders one column header per label with the given widths.
func headerRow(labels []string, widths []int) core.Row {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: white,
	}
	headerCell := &props.Cell{BackgroundColor: headerBg}

	cols := make([]core.Col, len(labels))
	for i, label := range labels {
		cols[i] = col.New(widths[i]).Add(text.New(label, headerText)).WithStyle(headerCell)
	}
	return row.New(8).Add(cols...)
}

func addProductTable(m core.Maroto, data SummaryData) {
	sectionTitle(m, "Complete Products Summary")
	m.AddRows(headerRow(
		[]string{"No", "Product Name", "Company", "Type", "Qty", "Price", "Total", "Photo"},
		[]int{1, 3, 2, 1, 1, 1, 2, 1},
	))

	base := props.Text{Size: 7, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	for i, line := range data.Lines {
		photo := "-"
		if line.Product.ImageData != "" {
			photo = "[Image]"
		}
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprint(i+1), base)),
				col.New(3).Add(text.New(line.Product.Name, left)),
				col.New(2).Add(text.New(orDash(line.Product.Company), left)),
				col.New(1).Add(text.New(orDash(line.Product.Type), left)),
				col.New(1).Add(text.New(strconv.Itoa(line.Quantity), right)),
				col.New(1).Add(text.New(data.money(line.Product.Price), right)),
				col.New(2).Add(text.New(data.money(line.LineTotal), right)),
				col.New(1).Add(text.New(photo, base)),
			),
		)
	}
}

func addTotals(m core.Maroto, data SummaryData) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 255, Green: 249, Blue: 230}}
	grandCell := &props.Cell{BackgroundColor: headerBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	grandStyle := labelStyle
	grandStyle.Color = white

	totals := []struct {
		label string
		value float64
		cell  *props.Cell
		text  props.Text
	}{
		{"Total Price", data.BaseTotal, summaryCell, labelStyle},
		{fmt.Sprintf("Installation Cost (%s)", FormatPercent(data.InstallationPercent)), data.InstallationAmount, summaryCell, labelStyle},
		{"Grand Total", data.GrandTotal, grandCell, grandStyle},
	}
	for _, t := range totals {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(t.label, t.text)).WithStyle(t.cell),
				col.New(4).Add(text.New(data.money(t.value), t.text)).WithStyle(t.cell),
			),
		)
	}

	m.AddRows(row.New(6))
}

func addAreaTable(m core.Maroto, data SummaryData) {
	sectionTitle(m, "Products by Area")
	widths := []int{3, 4, 1, 4}
	m.AddRows(headerRow([]string{"Area Name", "Product", "Quantity", "Comment"}, widths))

	left := props.Text{Size: 7, Align: align.Left}
	center := props.Text{Size: 7, Align: align.Center}

	if len(data.Areas) == 0 {
		m.AddRows(
			row.New(7).Add(
				col.New(12).Add(text.New("No areas defined in this project", left)),
			),
		)
		return
	}

	for _, area := range data.Areas {
		if len(area.Products) == 0 {
			m.AddRows(
				row.New(7).Add(
					col.New(widths[0]).Add(text.New(area.Name, left)),
					col.New(widths[1]).Add(text.New("-", left)),
					col.New(widths[2]).Add(text.New("-", center)),
					col.New(widths[3]).Add(text.New("-", left)),
				),
			)
			continue
		}
		for i, ap := range area.Products {
			name := ""
			if i == 0 {
				name = area.Name
			}
			m.AddRows(
				row.New(7).Add(
					col.New(widths[0]).Add(text.New(name, left)),
					col.New(widths[1]).Add(text.New(ap.Product.Name, left)),
					col.New(widths[2]).Add(text.New(fmt.Sprint(ap.Quantity), center)),
					col.New(widths[3]).Add(text.New(orDash(ap.Product.Comment), left)),
				),
			)
		}
	}
}
