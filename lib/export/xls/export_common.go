package xlsexport

import (
	"strconv"

	"fntp-backend/models"

	"github.com/xuri/excelize/v2"
)

const (
	fontFamily  = "Calibri"
	columnWidth = 25
	wideColumn  = 60
)

var priorityFill = map[models.Priority]string{
	models.PriorityCritical: "F4CCCC",
	models.PriorityHigh:     "FCE5CD",
	models.PriorityMedium:   "FFF2CC",
	models.PriorityLow:      "D9EAD3",
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// writeHeader writes bold headers on the row after row, freezes it and returns the header row.
// wideCol is a 1-based column made wider for free text, 0 for none.
func writeHeader(f *excelize.File, sheet string, row int, headers []string, wideCol int) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Family: fontFamily, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	values := make([]interface{}, 0, len(headers))
	for _, header := range headers {
		values = append(values, header)
	}
	if err = writeRow(f, sheet, row, values); err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return row, err
	}
	if wideCol > 0 {
		col, err := excelize.ColumnNumberToName(wideCol)
		if err != nil {
			return row, err
		}
		if err = f.SetColWidth(sheet, col, col, wideColumn); err != nil {
			return row, err
		}
	}
	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      row,
		TopLeftCell: "A" + strconv.Itoa(row+1),
		ActivePane:  "bottomLeft",
	})
	return row, err
}

func dataStyle(f *excelize.File, fill string) (int, error) {
	style := &excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Family: fontFamily, Size: 11},
	}
	if fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}}
	}
	return f.NewStyle(style)
}

func applyRowStyle(f *excelize.File, sheet string, row, cols, style int) error {
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cellLast, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cellFirst, cellLast, style)
}
