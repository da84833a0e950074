package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itam-dashboard/internal/cms"
)

func fixtureRecord() cms.EquipmentRecord {
	return cms.EquipmentRecord{
		ID:               1,
		Code:             "ITAM-0001",
		DeviceStatus:     "in use",
		PurchaseDate:     "2019-05-30",
		WarrantyDuration: "two years",
		OSType:           "macOS",
		Employee: &cms.Employee{
			ID:     10,
			Name:   "Nguyen Van A",
			Office: cms.Office{ID: 1, Name: "Hanoi"},
		},
		DeviceType:  &cms.DeviceType{ID: 2, Name: "Laptop"},
		DeviceModel: &cms.DeviceModel{ID: 3, Name: "MacBook Pro 14"},
		Files: []cms.File{
			{ID: 5, Name: "invoice.pdf", URL: "/uploads/invoice.pdf"},
			{ID: 6, Name: "photo.png", URL: "/uploads/photo.png"},
		},
		Comment: []cms.CommentNode{
			{Type: "paragraph", Children: []cms.TextRun{{Type: "text", Text: "Screen replaced"}}},
			{Type: "paragraph", Children: []cms.TextRun{{Type: "text", Text: "Battery swollen"}}},
		},
	}
}

func TestNewRecordView(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	fileURL := func(path string) string { return "http://cms.example.com" + path }

	view := NewRecordView(fixtureRecord(), now, fileURL)

	assert.Equal(t, "7 years 3 months", view.YearUsed)
	assert.Equal(t, "2 years", view.Warranty)
	assert.True(t, view.LongServing)
	assert.Equal(t, "Screen replaced, Battery swollen", view.Comment)

	require.Len(t, view.Files, 2)
	assert.Equal(t, "http://cms.example.com/uploads/invoice.pdf", view.Files[0].URL)
	assert.Equal(t, IconPDF, view.Files[0].Icon)
	assert.Equal(t, IconImage, view.Files[1].Icon)
}

func TestNewRecordViewBadDate(t *testing.T) {
	rec := fixtureRecord()
	rec.PurchaseDate = "unknown"

	view := NewRecordView(rec, time.Now(), func(p string) string { return p })

	assert.Empty(t, view.YearUsed)
	assert.False(t, view.LongServing)
	// Derived fields that don't depend on the date still compute.
	assert.Equal(t, "2 years", view.Warranty)
}

func TestCommentText(t *testing.T) {
	assert.Empty(t, CommentText(nil))
	assert.Empty(t, CommentText([]cms.CommentNode{{Type: "paragraph"}}))
	assert.Equal(t, "a, b", CommentText([]cms.CommentNode{
		{Children: []cms.TextRun{{Text: "a"}, {Text: "ignored"}}},
		{Children: []cms.TextRun{{Text: "b"}}},
	}))
}
