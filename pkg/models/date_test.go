package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateAcceptedLayouts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical", "2024-03-05", "2024-03-05"},
		{"rfc3339", "2024-03-05T10:30:00Z", "2024-03-05"},
		{"indonesian", "05-03-2024", "2024-03-05"},
		{"empty", "", ""},
		{"padded", "  2024-03-05  ", "2024-03-05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseDate(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("bukan tanggal")
	assert.Error(t, err)
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2023-12-31")
	assert.NoError(t, err)

	raw, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2023-12-31"`, string(raw))

	var back Date
	assert.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestZeroDateMarshalsEmpty(t *testing.T) {
	var d Date

	raw, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `""`, string(raw))

	value, err := d.Value()
	assert.NoError(t, err)
	assert.Nil(t, value, "zero date must map to SQL NULL")
}

func TestDateScanFromDriver(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan(time.Date(2024, 6, 1, 13, 45, 0, 0, time.Local)))
	assert.Equal(t, "2024-06-01", d.String())

	var null Date
	assert.NoError(t, null.Scan(nil))
	assert.True(t, null.IsZero())
}

func TestDateUnmarshalParam(t *testing.T) {
	var d Date
	assert.NoError(t, d.UnmarshalParam("2024-01-15"))
	assert.Equal(t, "2024-01-15", d.String())

	var empty Date
	assert.NoError(t, empty.UnmarshalParam(""))
	assert.True(t, empty.IsZero())
}
