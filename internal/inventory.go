package internal

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"itam-dashboard/internal/cms"
	"itam-dashboard/internal/export"
	"itam-dashboard/internal/inventory"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// inventoryRow pairs a record with its derived display fields so the
// client renders exactly what an export of the same filter would hold.
type inventoryRow struct {
	cms.EquipmentRecord
	Derived inventory.RecordView `json:"derived"`
}

type inventoryResponse struct {
	Records     []inventoryRow `json:"records"`
	PageCount   int            `json:"page_count"`
	Total       int            `json:"total"`
	Unavailable bool           `json:"unavailable,omitempty"`
	RequestID   string         `json:"request_id"`
}

// listOffices returns all offices sorted by name, for the tab bar.
func (s *Server) listOffices(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	offices, err := s.CMS.Offices(r.Context(), sess.Token)
	if err != nil {
		if errors.Is(err, cms.ErrUnauthorized) {
			s.sessionExpired(w)
			return
		}
		log.Printf("offices fetch failed: %v", err)
		sendErrorResponse(w, "Office list unavailable", "CMS_UNAVAILABLE", "", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": offices})
}

// getInventory returns one page of records for the current filter. A
// failed page fetch is not an error for the client: it gets an empty,
// explicitly unavailable page and the diagnostic goes to the log.
func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	params := parseInventoryParams(r)

	resp := inventoryResponse{
		Records:   []inventoryRow{},
		RequestID: RequestIDFromContext(r.Context()),
	}

	page, err := s.Inventory.FetchPage(r.Context(), sess.Token, params.page, params.office, params.q)
	if err != nil {
		if errors.Is(err, cms.ErrUnauthorized) {
			s.sessionExpired(w)
			return
		}
		log.Printf("inventory page %d fetch failed (office=%q q=%q): %v", params.page, params.office, params.q, err)
		resp.Unavailable = true
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
		return
	}

	now := time.Now()
	for _, rec := range page.Records {
		resp.Records = append(resp.Records, inventoryRow{
			EquipmentRecord: rec,
			Derived:         inventory.NewRecordView(rec, now, s.CMS.FileURL),
		})
	}
	resp.PageCount = page.PageCount
	resp.Total = page.Total

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// exportInventory sweeps every page of the current filter and streams
// the workbook. A sweep failure aborts the whole download; no partial
// file is ever produced.
func (s *Server) exportInventory(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	params := parseInventoryParams(r)

	records, err := s.Inventory.FetchAll(r.Context(), sess.Token, params.office, params.q)
	if err != nil {
		if errors.Is(err, cms.ErrUnauthorized) {
			s.sessionExpired(w)
			return
		}
		log.Printf("inventory export failed (office=%q q=%q): %v", params.office, params.q, err)
		sendErrorResponse(w, "Export failed", "EXPORT_FAILED", "", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(params.office)+`"`)
	if err := export.Write(w, records, time.Now(), s.CMS.FileURL); err != nil {
		// Headers are gone; all that is left is the log.
		log.Printf("workbook write failed: %v", err)
	}
}
