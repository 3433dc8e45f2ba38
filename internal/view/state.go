package view

import (
	"fmt"

	"github.com/guttosm/stockpager/internal/domain/models"
)

// Banner messages. At most one is shown per display pass.
const (
	MsgRequestException = "Request Exception"
	MsgNoResults        = "No Results Found"
)

// DisplayState is everything one display pass needs, projected from a single
// PageResponse. Missing fields project to 0 or an empty slice.
type DisplayState struct {
	CurrentPage    int
	TotalDataCount int
	ResultsPerPage int
	TotalPages     int
	ResultsData    []models.StockRecord
	// ResponseStatus is non-nil when the fetch did not end with HTTP 200.
	ResponseStatus *int
}

// Derive projects resp into a DisplayState. It has no side effects.
// TotalPages is capped at models.MaxTotalPages; a zero responseStatus is
// treated as absent.
func Derive(resp models.PageResponse) DisplayState {
	pages, _ := resp.PageCount()
	st := DisplayState{
		CurrentPage:    int(resp.Page),
		TotalDataCount: int(resp.Total),
		ResultsPerPage: int(resp.PerPage),
		TotalPages:     pages,
		ResultsData:    resp.Data,
	}
	if st.ResultsData == nil {
		st.ResultsData = []models.StockRecord{}
	}
	if resp.Failed() {
		s := int(*resp.ResponseStatus)
		st.ResponseStatus = &s
	}
	return st
}

// RowCount is the number of records on this page.
func (s DisplayState) RowCount() int {
	return len(s.ResultsData)
}

// ResultRange returns the "showing start to end" bounds. ok is false when
// there are no rows or the per-page size is unknown.
//
// On page 1 the range is 1..rows; past page 1 the end is page*perPage and the
// start is counted back from it, so a short last page can report an end
// beyond the total.
func (s DisplayState) ResultRange() (start, end int, ok bool) {
	rows := s.RowCount()
	if rows == 0 || s.ResultsPerPage <= 0 {
		return 0, 0, false
	}
	if s.CurrentPage > 1 {
		end = s.CurrentPage * s.ResultsPerPage
		start = end - rows + 1
	} else {
		end = rows
		start = s.CurrentPage
	}
	return start, end, true
}

// DescriptionHTML is the markup written to the description region, or "" when
// there is nothing to describe.
func (s DisplayState) DescriptionHTML() string {
	start, end, ok := s.ResultRange()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Showing <b>%d</b> to <b>%d</b> of <b>%d</b> results", start, end, s.TotalDataCount)
}

// TableRows returns one five-cell row per record, in arrival order.
func (s DisplayState) TableRows() [][]string {
	rows := make([][]string, 0, len(s.ResultsData))
	for _, rec := range s.ResultsData {
		rows = append(rows, rec.Cells())
	}
	return rows
}

// BannerMessage returns the message the banner must show, or "" when the
// banner stays hidden. A failed fetch always wins over an empty page.
func (s DisplayState) BannerMessage() string {
	switch {
	case s.ResponseStatus != nil:
		return MsgRequestException
	case s.RowCount() == 0:
		return MsgNoResults
	default:
		return ""
	}
}
