package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// SheetName of the design worksheet
const SheetName = "Design"

// WriteXLSX writes the design as a single-sheet workbook with columns
// Parameter, Symbol, Value, Unit, Display
func WriteXLSX(w io.Writer, doc Document) error {
	if doc.Result == nil {
		return fmt.Errorf("report has no design result")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	set := func(col, rowNum int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		return f.SetCellValue(SheetName, cell, v)
	}

	r := 1
	if err := set(1, r, Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", "A1", bold); err != nil {
		return err
	}
	r++
	if doc.Project != "" {
		if err := set(1, r, "Project"); err != nil {
			return err
		}
		if err := set(2, r, doc.Project); err != nil {
			return err
		}
		r++
	}
	if err := set(1, r, "Date"); err != nil {
		return err
	}
	if err := set(2, r, doc.date().Format("2006-01-02")); err != nil {
		return err
	}
	r += 2

	block := func(heading string, rows []row) error {
		header := []string{heading, "Symbol", "Value", "Unit", "Display"}
		for i, h := range header {
			if err := set(i+1, r, h); err != nil {
				return err
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, r)
		last, _ := excelize.CoordinatesToCellName(len(header), r)
		if err := f.SetCellStyle(SheetName, first, last, bold); err != nil {
			return err
		}
		r++

		for _, rw := range rows {
			values := []interface{}{rw.Label, rw.Symbol, rw.Value, rw.Unit, rw.Text}
			for i, v := range values {
				if err := set(i+1, r, v); err != nil {
					return err
				}
			}
			r++
		}
		r++
		return nil
	}

	if err := block("Input", inputRows(doc.Input)); err != nil {
		return err
	}
	if err := block("Result", resultRows(doc.Result)); err != nil {
		return err
	}

	if doc.Result.Degenerate {
		if err := set(1, r, DegenerateNote); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return err
	}

	return f.Write(w)
}
