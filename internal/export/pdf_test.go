package export

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFProducesDocument(t *testing.T) {
	headers := []string{"No Registrasi", "Merek"}
	rows := [][]string{{"DN 1 A", "Toyota"}, {"DN 2 B", ""}}

	data, err := PDF(headers, rows, "")
	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFEmptyRowsStillRendersLetterhead(t *testing.T) {
	data, err := PDF([]string{"Nama"}, nil, "")
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFRequiresHeaders(t *testing.T) {
	_, err := PDF(nil, nil, "")
	assert.Error(t, err)
}

func TestPDFMissingLogoIsSkipped(t *testing.T) {
	data, err := PDF([]string{"Nama"}, [][]string{{"Palem"}}, "./does-not-exist.png")
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFPaginatesLongTables(t *testing.T) {
	rows := make([][]string, 300)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("DN %d", i), "Merek"}
	}

	short, err := PDF([]string{"No", "Merek"}, rows[:2], "")
	assert.NoError(t, err)
	long, err := PDF([]string{"No", "Merek"}, rows, "")
	assert.NoError(t, err)
	assert.Greater(t, len(long), len(short))
}
