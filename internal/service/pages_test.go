package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/stockpager/internal/domain/models"
)

type stubRequester struct {
	resp  models.PageResponse
	pages []int
}

func (s *stubRequester) RequestPage(_ context.Context, page int) models.PageResponse {
	s.pages = append(s.pages, page)
	return s.resp
}

type stubRepo struct {
	inserted  []models.FetchRecord
	insertErr error
	list      []models.FetchRecord
	listErr   error
	limit     int
}

func (s *stubRepo) InsertFetch(_ context.Context, rec models.FetchRecord) error {
	s.inserted = append(s.inserted, rec)
	return s.insertErr
}

func (s *stubRepo) ListRecentFetches(_ context.Context, limit int) ([]models.FetchRecord, error) {
	s.limit = limit
	return s.list, s.listErr
}

func fixedClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}

func TestPageService_Fetch_TableDriven(t *testing.T) {
	failed := models.Int(408)
	start := time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		page       int
		resp       models.PageResponse
		insertErr  error
		wantPage   int
		wantStatus int
		wantRows   int
	}{
		{
			name:       "ok",
			page:       2,
			resp:       models.PageResponse{Page: 2, Data: make([]models.StockRecord, 3)},
			wantPage:   2,
			wantStatus: 200,
			wantRows:   3,
		},
		{
			name:       "transport failure with clamped page",
			page:       -4,
			resp:       models.PageResponse{ResponseStatus: &failed},
			wantPage:   1,
			wantStatus: 408,
		},
		{
			name:       "record failure is not surfaced",
			page:       1,
			resp:       models.PageResponse{Page: 1, Data: make([]models.StockRecord, 1)},
			insertErr:  errors.New("db down"),
			wantPage:   1,
			wantStatus: 200,
			wantRows:   1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := &stubRequester{resp: tc.resp}
			repo := &stubRepo{insertErr: tc.insertErr}
			svc := NewPageService(req, repo).(*pageService)
			svc.now = fixedClock(start, 25*time.Millisecond)

			got := svc.Fetch(context.Background(), tc.page)
			if len(got.Data) != len(tc.resp.Data) || got.Status() != tc.wantStatus {
				t.Fatalf("response not passed through: %+v", got)
			}
			if len(req.pages) != 1 || req.pages[0] != tc.page {
				t.Fatalf("requester called with %v, want [%d]", req.pages, tc.page)
			}
			if len(repo.inserted) != 1 {
				t.Fatalf("want 1 record, got %d", len(repo.inserted))
			}
			rec := repo.inserted[0]
			if rec.Page != tc.wantPage || rec.Status != tc.wantStatus || rec.RowCount != tc.wantRows {
				t.Fatalf("unexpected record: %+v", rec)
			}
			if rec.LatencyMs != 25 || !rec.FetchedAt.Equal(start) {
				t.Fatalf("unexpected timing: %+v", rec)
			}
		})
	}
}

func TestPageService_Fetch_NoRepository(t *testing.T) {
	req := &stubRequester{resp: models.PageResponse{Page: 1}}
	svc := NewPageService(req, nil)
	if got := svc.Fetch(context.Background(), 1); got.Page != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestPageService_RecentFetches(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		svc := NewPageService(&stubRequester{}, nil)
		if _, err := svc.RecentFetches(context.Background(), 10); !errors.Is(err, ErrFetchLogDisabled) {
			t.Fatalf("want ErrFetchLogDisabled, got %v", err)
		}
	})

	t.Run("delegates", func(t *testing.T) {
		repo := &stubRepo{list: []models.FetchRecord{{ID: 7, Page: 2}}}
		svc := NewPageService(&stubRequester{}, repo)
		out, err := svc.RecentFetches(context.Background(), 3)
		if err != nil || len(out) != 1 || out[0].ID != 7 || repo.limit != 3 {
			t.Fatalf("unexpected: out=%v err=%v limit=%d", out, err, repo.limit)
		}
	})

	t.Run("error", func(t *testing.T) {
		repo := &stubRepo{listErr: errors.New("boom")}
		svc := NewPageService(&stubRequester{}, repo)
		if _, err := svc.RecentFetches(context.Background(), 3); err == nil {
			t.Fatalf("expected error")
		}
	})
}
