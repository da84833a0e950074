package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"itam-dashboard/internal/cms"
)

func testRecords() []cms.EquipmentRecord {
	return []cms.EquipmentRecord{
		{
			ID:               1,
			Code:             "ITAM-0001",
			DeviceStatus:     "in use",
			PurchaseDate:     "2019-05-30",
			WarrantyDuration: "two years",
			OSType:           "macOS",
			Employee: &cms.Employee{
				Name:   "Nguyen Van A",
				Office: cms.Office{Name: "Hanoi"},
			},
			DeviceType:  &cms.DeviceType{Name: "Laptop"},
			DeviceModel: &cms.DeviceModel{Name: "MacBook Pro 14"},
			Files: []cms.File{
				{Name: "invoice.pdf", URL: "/uploads/invoice.pdf"},
				{Name: "photo.png", URL: "/uploads/photo.png"},
			},
			Comment: []cms.CommentNode{
				{Children: []cms.TextRun{{Text: "Screen replaced"}}},
				{Children: []cms.TextRun{{Text: "Battery swollen"}}},
			},
		},
		{
			ID:           2,
			Code:         "ITAM-0002",
			DeviceStatus: "in storage",
			PurchaseDate: "2025-01-15",
		},
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ITAM_Hanoi.xlsx", Filename("Hanoi"))
	assert.Equal(t, "ITAM.xlsx", Filename(""))
}

func TestBuildWorkbook(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	fileURL := func(path string) string { return "http://cms.example.com" + path }

	wb, err := BuildWorkbook(testRecords(), now, fileURL)
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)

	sheet := wb.Sheets[0]
	assert.Equal(t, SheetName, sheet.Name)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	for i, col := range Columns {
		assert.Equal(t, col, header.GetCell(i).Value, "header column %d", i)
	}

	row, err := sheet.Row(1)
	require.NoError(t, err)
	want := []string{
		"ITAM-0001",
		"Nguyen Van A",
		"Hanoi",
		"Laptop",
		"MacBook Pro 14",
		"macOS",
		"2019-05-30",
		"7 years 3 months",
		"in use",
		"2 years",
		"Screen replaced, Battery swollen",
		`=HYPERLINK("http://cms.example.com/uploads/invoice.pdf"; "invoice.pdf"), ` +
			`=HYPERLINK("http://cms.example.com/uploads/photo.png"; "photo.png")`,
	}
	for i, value := range want {
		assert.Equal(t, value, row.GetCell(i).Value, "column %q", Columns[i])
	}

	// A record with no associations still yields a complete row.
	bare, err := sheet.Row(2)
	require.NoError(t, err)
	assert.Equal(t, "ITAM-0002", bare.GetCell(0).Value)
	assert.Equal(t, "", bare.GetCell(1).Value)
	assert.Equal(t, "", bare.GetCell(11).Value)
}

func TestWriteRoundTrip(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := Write(&buf, testRecords(), now, func(p string) string { return p })
	require.NoError(t, err)

	wb, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)
	assert.Equal(t, SheetName, wb.Sheets[0].Name)

	row, err := wb.Sheets[0].Row(1)
	require.NoError(t, err)
	assert.Equal(t, "ITAM-0001", row.GetCell(0).Value)
}
