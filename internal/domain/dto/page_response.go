package dto

// RegionView is the JSON form of one display region.
type RegionView struct {
	Present bool   `json:"present" example:"true"`
	Hidden  bool   `json:"hidden" example:"false"`
	Text    string `json:"text" example:"3"`
}

// LinkView is one pagination link as rendered.
type LinkView struct {
	Label     string `json:"label" example:"3"`
	Page      int    `json:"page,omitempty" example:"3"`
	Direction string `json:"direction,omitempty" example:"next"`
	Active    bool   `json:"active"`
}

// PaginationView is the control list region.
type PaginationView struct {
	RegionView
	Links []LinkView `json:"links"`
}

// TableView is the results table region; each row holds date, open, high, low, close.
type TableView struct {
	RegionView
	Rows [][]string `json:"rows"`
}

// PageView is the JSON snapshot returned by GET /api/v1/page: the state of every
// region after one display pass.
type PageView struct {
	CurrentPage int            `json:"current_page" example:"3"`
	Heading     RegionView     `json:"heading"`
	Pagination  PaginationView `json:"pagination"`
	Description RegionView     `json:"description"`
	Table       TableView      `json:"table"`
	Banner      RegionView     `json:"banner"`
}

// FetchLogResponse wraps the recent fetch log entries.
type FetchLogResponse struct {
	Fetches []FetchEntry `json:"fetches"`
}

// FetchEntry is one fetch log row.
type FetchEntry struct {
	Page      int    `json:"page" example:"2"`
	Status    int    `json:"status" example:"200"`
	RowCount  int    `json:"row_count" example:"10"`
	LatencyMs int64  `json:"latency_ms" example:"84"`
	FetchedAt string `json:"fetched_at" example:"2025-09-01T12:00:00Z"`
}
