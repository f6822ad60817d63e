package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExcelLayout(t *testing.T) {
	headers := []string{"No Registrasi", "Merek", "Kondisi"}
	rows := [][]string{
		{"DN 1 A", "Toyota", "Baik"},
		{"DN 2 B", "", "Rusak Ringan"},
	}

	data, err := Excel(headers, rows, "Kendaraan")
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Kendaraan"}, f.GetSheetList())

	a1, err := f.GetCellValue("Kendaraan", "A1")
	assert.NoError(t, err)
	assert.Equal(t, LetterheadLine1, a1)

	a2, err := f.GetCellValue("Kendaraan", "A2")
	assert.NoError(t, err)
	assert.Equal(t, LetterheadLine2, a2)

	a5, err := f.GetCellValue("Kendaraan", "A5")
	assert.NoError(t, err)
	assert.Equal(t, "", a5, "row 5 separates letterhead from the table")

	b6, err := f.GetCellValue("Kendaraan", "B6")
	assert.NoError(t, err)
	assert.Equal(t, "Merek", b6)

	a7, err := f.GetCellValue("Kendaraan", "A7")
	assert.NoError(t, err)
	assert.Equal(t, "DN 1 A", a7)

	b8, err := f.GetCellValue("Kendaraan", "B8")
	assert.NoError(t, err)
	assert.Equal(t, Placeholder, b8, "empty values render as the placeholder")
}

func TestExcelHeaderRowIsShaded(t *testing.T) {
	data, err := Excel([]string{"No Registrasi", "Merek"}, nil, "Kendaraan")
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle("Kendaraan", "A6")
	assert.NoError(t, err)

	style, err := f.GetStyle(styleID)
	assert.NoError(t, err)
	assert.Equal(t, "pattern", style.Fill.Type)
	if assert.Len(t, style.Fill.Color, 1) {
		// excelize may prepend the alpha channel when reading back.
		assert.True(t, strings.HasSuffix(style.Fill.Color[0], "D9D9D9"))
	}
}

func TestExcelEmptyRowsStillHasLetterhead(t *testing.T) {
	data, err := Excel([]string{"Nama"}, nil, "Tanaman")
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	a1, err := f.GetCellValue("Tanaman", "A1")
	assert.NoError(t, err)
	assert.Equal(t, LetterheadLine1, a1)

	a6, err := f.GetCellValue("Tanaman", "A6")
	assert.NoError(t, err)
	assert.Equal(t, "Nama", a6)
}

func TestExcelRequiresHeaders(t *testing.T) {
	_, err := Excel(nil, nil, "Kosong")
	assert.Error(t, err)
}

func TestExcelTruncatesLongSheetName(t *testing.T) {
	name := "servisberkala-kendaraan-dinas-lingkungan-hidup"
	data, err := Excel([]string{"A"}, nil, name)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Len(t, sheets, 1)
	assert.Equal(t, name[:31], sheets[0])
}
