package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel builds a spreadsheet with the four-line letterhead merged across all
// columns, a bordered header row and bordered data cells, with column widths
// sized to the longest value. It is a pure function of its inputs; the
// handler decides what to do with the bytes.
func Excel(headers []string, rows [][]string, sheet string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("export requires at least one header column")
	}
	if len(sheet) > 31 {
		sheet = sheet[:31]
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	letterStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border,
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9D9D9"}},
	})
	if err != nil {
		return nil, err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}

	// Letterhead, rows 1-4, merged across every column. Row 5 stays blank.
	letterhead := []string{LetterheadLine1, LetterheadLine2, LetterheadLine3, LetterheadLine4}
	for i, line := range letterhead {
		row := i + 1
		if err := f.MergeCell(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)); err != nil {
			return nil, err
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(sheet, cell, line); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, letterStyle); err != nil {
			return nil, err
		}
	}

	const headerRow = 6
	widths := make([]float64, len(headers))

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[col] = float64(len(header))
	}

	for i, row := range rows {
		for col := range headers {
			value := Placeholder
			if col < len(row) && row[col] != "" {
				value = row[col]
			}
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, cell, cell, cellStyle); err != nil {
				return nil, err
			}
			if w := float64(len(value)); w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, width+4); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
