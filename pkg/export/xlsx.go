// Package export renders catalogs as spreadsheets for clinical review.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/xuri/excelize/v2"
)

// Header is the first row of every catalog sheet.
var Header = []string{
	"Question ID", "Question", "Option ID", "Option", "Next Question", "Recommendation", "Default",
}

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// Workbook builds a workbook with one sheet per catalog, in set order.
// Each row is one option; terminal options carry their recommendation.
func Workbook(set *catalog.Set) (*excelize.File, error) {
	f := excelize.NewFile()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, c := range set.All() {
		sheet := SheetName(c.ID())
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
		}

		if err := writeCatalog(f, sheet, c, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write renders the workbook to w.
func Write(w io.Writer, set *catalog.Set) error {
	f, err := Workbook(set)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// Rows lists the data rows of a catalog sheet, without the header.
func Rows(c *catalog.Catalog) [][]string {
	var rows [][]string
	for _, q := range c.Questions() {
		for _, opt := range q.Options {
			row := []string{q.ID, q.Text, opt.ID, opt.Label, opt.NextQuestionID, "", ""}
			if opt.IsTerminal() {
				row[5] = c.Recommendation(q.ID, opt.ID)
				if !c.HasRecommendation(q.ID, opt.ID) {
					row[6] = "yes"
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// SheetName turns a catalog ID into a valid, length-limited sheet name.
func SheetName(id string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`\/?*[]:`, r) {
			return '_'
		}
		return r
	}, id)
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

func writeCatalog(f *excelize.File, sheet string, c *catalog.Catalog, headerStyle int) error {
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, row := range Rows(c) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 50); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "F", "F", 70)
}
