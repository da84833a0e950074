package inventory

import (
	"fmt"
	"strings"
	"time"
)

// YearsInUse returns the calendar difference between now and the
// purchase date as whole years plus remainder months. A negative month
// component borrows one year (12 months). Future purchase dates are not
// clamped; the arithmetic result is returned as-is.
func YearsInUse(purchase, now time.Time) (years, months int) {
	years = now.Year() - purchase.Year()
	months = int(now.Month()) - int(purchase.Month())
	if months < 0 {
		years--
		months += 12
	}
	return years, months
}

// YearUsedLabel formats a years+months pair the way the dashboard shows
// it, e.g. "2 years 3 months".
func YearUsedLabel(years, months int) string {
	return fmt.Sprintf("%d year%s %d month%s",
		years, plural(years), months, plural(months))
}

func plural(n int) string {
	if n != 1 {
		return "s"
	}
	return ""
}

// warrantyWords maps the leading English number word of a warranty
// duration to its numeric value. Anything else counts as 0.
var warrantyWords = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
}

// WarrantyLabel normalizes a free-text warranty duration ("two years",
// "three yr") to "<n> year(s)". Only the leading word is parsed. The
// plural form appears only for n > 1, so an unrecognized word renders
// as "0 year".
func WarrantyLabel(text string) string {
	word, _, _ := strings.Cut(strings.ToLower(text), " ")
	n := warrantyWords[word]
	if n > 1 {
		return fmt.Sprintf("%d years", n)
	}
	return fmt.Sprintf("%d year", n)
}

// IconKind classifies an attachment for display.
type IconKind string

const (
	IconPDF         IconKind = "pdf"
	IconSpreadsheet IconKind = "spreadsheet"
	IconImage       IconKind = "image"
	IconGeneric     IconKind = "generic"
)

// FileIcon classifies a filename by its lowercased extension.
func FileIcon(filename string) IconKind {
	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	switch ext {
	case "pdf":
		return IconPDF
	case "xlsx", "xls":
		return IconSpreadsheet
	case "jpg", "jpeg", "png":
		return IconImage
	default:
		return IconGeneric
	}
}

// longServingYears is the whole-year age at which a device row gets
// highlighted. Presentation hint only.
const longServingYears = 6

// IsLongServing reports whether a device has been in use for at least
// six whole years. The boundary is exact: six years to the day counts,
// one day short does not.
func IsLongServing(purchase, now time.Time) bool {
	return !now.Before(purchase.AddDate(longServingYears, 0, 0))
}

// purchaseDateLayouts covers the forms the CMS emits for date fields.
var purchaseDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParsePurchaseDate parses a CMS purchase date string.
func ParsePurchaseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range purchaseDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized purchase date %q: %w", s, err)
}
