package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// PDF builds a landscape legal-size document: logo top-left, centered
// letterhead, a horizontal rule, then the table paginated automatically
// with the header row repeated on every page.
func PDF(headers []string, rows [][]string, logoPath string) ([]byte, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("export requires at least one header column")
	}

	pdf := fpdf.New("L", "mm", "Legal", "")
	pdf.SetAutoPageBreak(false, 12)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	if logoPath != "" {
		if _, err := os.Stat(logoPath); err == nil {
			pdf.ImageOptions(logoPath, left, 8, 18, 20, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
		}
	}

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetXY(left, 12)
	pdf.CellFormat(usable, 5, LetterheadLine1, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(usable, 6, LetterheadLine2, "", 1, "C", false, 0, "")
	pdf.CellFormat(usable, 6, LetterheadLine3, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(usable, 4, LetterheadLine4, "", 1, "C", false, 0, "")

	ruleY := pdf.GetY() + 2
	pdf.SetLineWidth(0.5)
	pdf.Line(left, ruleY, pageW-right, ruleY)
	pdf.SetY(ruleY + 4)

	colW := usable / float64(len(headers))
	printHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(100, 100, 255)
		pdf.SetTextColor(255, 255, 255)
		for _, header := range headers {
			pdf.CellFormat(colW, 7, header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}
	printHeader()

	for _, row := range rows {
		if pdf.GetY()+6 > pageH-12 {
			pdf.AddPage()
			printHeader()
		}
		for col := range headers {
			value := Placeholder
			if col < len(row) && row[col] != "" {
				value = row[col]
			}
			pdf.CellFormat(colW, 6, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
