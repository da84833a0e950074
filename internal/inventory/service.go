package inventory

import (
	"context"
	"fmt"

	"itam-dashboard/internal/cms"
)

// PageFetcher is the slice of the CMS client the query service needs.
type PageFetcher interface {
	EquipmentPage(ctx context.Context, token string, pq cms.PageQuery) (*cms.EquipmentPage, error)
}

// Page is one page of results plus the totals reported by the CMS for
// the whole filtered set.
type Page struct {
	Records   []cms.EquipmentRecord
	PageCount int
	Total     int
}

// Service translates (page, office, search) tuples into CMS queries.
// Display and export share it, so both always see identical filter
// semantics.
type Service struct {
	cms PageFetcher
}

func NewService(fetcher PageFetcher) *Service {
	return &Service{cms: fetcher}
}

// FetchPage fetches one page of at most cms.PageSize records, sorted by
// code ascending. cms.ErrUnauthorized passes through untouched so the
// session-expired policy can act on it.
func (s *Service) FetchPage(ctx context.Context, token string, page int, office, search string) (*Page, error) {
	ep, err := s.cms.EquipmentPage(ctx, token, cms.PageQuery{
		Page:   page,
		Office: office,
		Search: search,
	})
	if err != nil {
		return nil, err
	}
	return &Page{
		Records:   ep.Data,
		PageCount: ep.Meta.Pagination.PageCount,
		Total:     ep.Meta.Pagination.Total,
	}, nil
}

// FetchAll sweeps every page matching the filter, strictly one page
// after another: the first response reports the page count, and the
// CMS's rate limits make sequential fetch the simplest correct
// strategy. Any page failure aborts the whole sweep; partial results
// are never returned.
func (s *Service) FetchAll(ctx context.Context, token, office, search string) ([]cms.EquipmentRecord, error) {
	first, err := s.FetchPage(ctx, token, 1, office, search)
	if err != nil {
		return nil, fmt.Errorf("sweep page 1: %w", err)
	}

	records := make([]cms.EquipmentRecord, 0, first.Total)
	records = append(records, first.Records...)

	for page := 2; page <= first.PageCount; page++ {
		p, err := s.FetchPage(ctx, token, page, office, search)
		if err != nil {
			return nil, fmt.Errorf("sweep page %d of %d: %w", page, first.PageCount, err)
		}
		records = append(records, p.Records...)
	}
	return records, nil
}
