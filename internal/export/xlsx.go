// Package export renders a swept inventory dataset as an Excel
// workbook matching the dashboard's column layout.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tealeg/xlsx/v3"

	"itam-dashboard/internal/cms"
	"itam-dashboard/internal/inventory"
)

// SheetName is the single worksheet every export carries.
const SheetName = "ITAM"

// Columns is the header row, in order.
var Columns = []string{
	"Code",
	"Employee Name",
	"Office Name",
	"Device Type",
	"Device Model",
	"OS Type",
	"Purchase Date",
	"Year Used",
	"Device Status",
	"Warranty Duration",
	"Comment",
	"Files",
}

// Filename names the exported workbook for an office filter; an empty
// office means an all-records export.
func Filename(office string) string {
	if office == "" {
		return "ITAM.xlsx"
	}
	return fmt.Sprintf("ITAM_%s.xlsx", office)
}

// BuildWorkbook lays out one row per record under a header row. Rows
// come straight from the same page-fetch path the dashboard displays,
// so a workbook always matches what the filter showed on screen.
// fileURL resolves stored relative attachment paths.
func BuildWorkbook(records []cms.EquipmentRecord, now time.Time, fileURL func(string) string) (*xlsx.File, error) {
	wb := xlsx.NewFile()
	sheet, err := wb.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, col := range Columns {
		header.AddCell().SetString(col)
	}

	for _, rec := range records {
		view := inventory.NewRecordView(rec, now, fileURL)
		row := sheet.AddRow()
		row.AddCell().SetString(rec.Code)
		row.AddCell().SetString(employeeName(rec))
		row.AddCell().SetString(officeName(rec))
		row.AddCell().SetString(deviceType(rec))
		row.AddCell().SetString(deviceModel(rec))
		row.AddCell().SetString(rec.OSType)
		row.AddCell().SetString(rec.PurchaseDate)
		row.AddCell().SetString(view.YearUsed)
		row.AddCell().SetString(rec.DeviceStatus)
		row.AddCell().SetString(view.Warranty)
		row.AddCell().SetString(view.Comment)
		row.AddCell().SetString(fileLinks(view.Files))
	}
	return wb, nil
}

// Write builds the workbook and streams it to w.
func Write(w io.Writer, records []cms.EquipmentRecord, now time.Time, fileURL func(string) string) error {
	wb, err := BuildWorkbook(records, now, fileURL)
	if err != nil {
		return err
	}
	return wb.Write(w)
}

// fileLinks renders attachments as HYPERLINK formulas pairing the full
// URL with the filename, joined with ", ".
func fileLinks(files []inventory.FileView) string {
	links := make([]string, 0, len(files))
	for _, f := range files {
		links = append(links, fmt.Sprintf(`=HYPERLINK("%s"; "%s")`, f.URL, f.Name))
	}
	return strings.Join(links, ", ")
}

func employeeName(rec cms.EquipmentRecord) string {
	if rec.Employee == nil {
		return ""
	}
	return rec.Employee.Name
}

func officeName(rec cms.EquipmentRecord) string {
	if rec.Employee == nil {
		return ""
	}
	return rec.Employee.Office.Name
}

func deviceType(rec cms.EquipmentRecord) string {
	if rec.DeviceType == nil {
		return ""
	}
	return rec.DeviceType.Name
}

func deviceModel(rec cms.EquipmentRecord) string {
	if rec.DeviceModel == nil {
		return ""
	}
	return rec.DeviceModel.Name
}
