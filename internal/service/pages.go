package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/fetcher"
	"github.com/guttosm/stockpager/internal/logger"
	"github.com/guttosm/stockpager/internal/storage"
)

// ErrFetchLogDisabled is returned by RecentFetches when no repository is configured.
var ErrFetchLogDisabled = errors.New("fetch log is disabled")

// PageRequester performs one upstream page request.
type PageRequester interface {
	RequestPage(ctx context.Context, page int) models.PageResponse
}

// PageService defines business logic around upstream page requests.
type PageService interface {
	Fetch(ctx context.Context, page int) models.PageResponse
	RecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error)
}

type pageService struct {
	requester PageRequester
	repo      storage.FetchLogRepository
	now       func() time.Time
}

// NewPageService wraps requester. repo may be nil, in which case nothing is recorded.
func NewPageService(requester PageRequester, repo storage.FetchLogRepository) PageService {
	return &pageService{requester: requester, repo: repo, now: time.Now}
}

func (s *pageService) Fetch(ctx context.Context, page int) models.PageResponse {
	start := s.now()
	resp := s.requester.RequestPage(ctx, page)
	if s.repo == nil {
		return resp
	}

	rec := models.FetchRecord{
		Page:      fetcher.NormalizePage(page),
		Status:    resp.Status(),
		RowCount:  len(resp.Data),
		LatencyMs: s.now().Sub(start).Milliseconds(),
		FetchedAt: start.UTC(),
	}
	// recorded even when the caller's context is already done
	if err := s.repo.InsertFetch(context.WithoutCancel(ctx), rec); err != nil {
		logger.L().Warn().Err(err).Int("page", rec.Page).Msg("failed to record fetch")
	}
	return resp
}

func (s *pageService) RecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error) {
	if s.repo == nil {
		return nil, ErrFetchLogDisabled
	}
	return s.repo.ListRecentFetches(ctx, limit)
}
