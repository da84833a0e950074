package inventory

import (
	"strings"
	"time"

	"itam-dashboard/internal/cms"
)

// FileView is one attachment resolved for display or export.
type FileView struct {
	Name string   `json:"name"`
	URL  string   `json:"url"`
	Icon IconKind `json:"icon"`
}

// RecordView carries the derived fields for one record. The dashboard
// response and the spreadsheet rows are both built from it, which keeps
// what the user sees and what they download in lockstep.
type RecordView struct {
	YearUsed    string     `json:"year_used"`
	Warranty    string     `json:"warranty"`
	LongServing bool       `json:"long_serving"`
	Comment     string     `json:"comment"`
	Files       []FileView `json:"files"`
}

// NewRecordView computes the derived fields for rec as of now. fileURL
// resolves a stored relative attachment path to a full URL.
func NewRecordView(rec cms.EquipmentRecord, now time.Time, fileURL func(string) string) RecordView {
	view := RecordView{
		Warranty: WarrantyLabel(rec.WarrantyDuration),
		Comment:  CommentText(rec.Comment),
	}

	if purchase, err := ParsePurchaseDate(rec.PurchaseDate); err == nil {
		years, months := YearsInUse(purchase, now)
		view.YearUsed = YearUsedLabel(years, months)
		view.LongServing = IsLongServing(purchase, now)
	}

	for _, f := range rec.Files {
		view.Files = append(view.Files, FileView{
			Name: f.Name,
			URL:  fileURL(f.URL),
			Icon: FileIcon(f.Name),
		})
	}
	return view
}

// CommentText flattens a comment document to one line: the first text
// run of each paragraph, joined with ", ".
func CommentText(nodes []cms.CommentNode) string {
	parts := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if len(node.Children) > 0 {
			parts = append(parts, node.Children[0].Text)
		}
	}
	return strings.Join(parts, ", ")
}
