package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes an A4 design report
func WritePDF(w io.Writer, doc Document) error {
	if doc.Result == nil {
		return fmt.Errorf("report has no design result")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(Title), false)
	pdf.SetAuthor(tr(doc.Author), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if doc.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", doc.Project)))
		pdf.Ln(6)
	}
	if doc.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", doc.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", doc.date().Format("2006-01-02")))
	pdf.Ln(10)

	table := func(heading string, rows []row) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, heading)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range rows {
			value := r.Text
			if value == "" {
				value = fmt.Sprintf("%.4f %s", r.Value, r.Unit)
			}
			pdf.CellFormat(80, 6, tr(r.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, tr(r.Symbol), "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 6, tr(value), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	table("Terrain and gallery", inputRows(doc.Input))
	table("Design results", resultRows(doc.Result))

	if doc.Result.Degenerate {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(DegenerateNote), "", "L", false)
		pdf.Ln(4)
	}

	if len(doc.Diagram) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		pdf.RegisterImageOptionsReader("section", opts, bytes.NewReader(doc.Diagram))
		pdf.ImageOptions("section", 25, pdf.GetY(), 160, 0, true, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(doc.Result.PlasticLabel()))

	return pdf.Output(w)
}
