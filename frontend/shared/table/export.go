package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"web3admin/models"
)

// WriteCSV writes a header of column labels and one line per row.
func WriteCSV(w io.Writer, columns []Column, rows []models.Record) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(columns))
	for _, col := range columns {
		header = append(header, col.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, 0, len(columns))
		for _, col := range columns {
			record = append(record, col.Cell(row).Text)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const pdfMaxCell = 60

// RenderPDF lays the rows out as a landscape A4 grid.
func RenderPDF(title string, columns []Column, rows []models.Record, printedAt time.Time) ([]byte, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns to render")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Printed %s, %d rows", printedAt.Format("02/01/2006 15:04"), len(rows)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(columns))

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range columns {
			pdf.CellFormat(colW, 7, tr(clip(col.Label)), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()

	if len(rows) == 0 {
		pdf.CellFormat(colW*float64(len(columns)), 7, EmptyMessage, "1", 1, "C", false, 0, "")
	}
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range rows {
		if pdf.GetY()+7 > pageH-bottom {
			pdf.AddPage()
			header()
		}
		for _, col := range columns {
			pdf.CellFormat(colW, 6, tr(clip(col.Cell(row).Text)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= pdfMaxCell {
		return s
	}
	return string(r[:pdfMaxCell-3]) + "..."
}
