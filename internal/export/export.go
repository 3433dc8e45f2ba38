// Package export dumps every upstream page as one CSV document.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/logger"
)

// maxParallel caps concurrent page requests.
const maxParallel = 8

// Header is the first CSV record.
var Header = []string{"date", "open", "high", "low", "close"}

// Fetcher performs one upstream page request.
type Fetcher interface {
	Fetch(ctx context.Context, page int) models.PageResponse
}

// PageError reports a page whose request did not end with HTTP 200.
type PageError struct {
	Page   int
	Status int
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: upstream status %d", e.Page, e.Status)
}

// Export fetches page 1, then pages 2..total_pages concurrently, and writes
// every record to w as CSV in page order. parallel bounds the concurrent
// requests (0 = min(8, NumCPU)).
//
// Behavior:
//   - Each page is requested exactly once; no retry.
//   - At most models.MaxTotalPages pages are exported.
//   - The first failed page cancels the outstanding requests and is returned
//     as a *PageError; nothing is written in that case.
//
// Returns:
//   - int: number of records written (header excluded).
//   - error: first failure encountered (if any).
func Export(ctx context.Context, f Fetcher, w io.Writer, parallel int) (int, error) {
	start := time.Now()

	first := f.Fetch(ctx, 1)
	if first.Failed() {
		return 0, &PageError{Page: 1, Status: first.Status()}
	}

	total, clamped := first.PageCount()
	if clamped {
		logger.L().Warn().
			Int("total_pages", int(first.TotalPages)).
			Int("max", models.MaxTotalPages).
			Msg("total_pages clamped, export truncated")
	}
	if total < 1 {
		total = 1
	}
	pages := make([][]models.StockRecord, total)
	pages[0] = first.Data

	workers := clampParallel(parallel)
	logger.L().Info().Int("pages", total).Int("max_parallel", workers).Msg("export start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for p := 2; p <= total; p++ {
		p := p
		g.Go(func() error {
			resp := f.Fetch(gctx, p)
			if resp.Failed() {
				logger.L().Error().Int("page", p).Int("status", resp.Status()).Msg("page failed")
				return &PageError{Page: p, Status: resp.Status()}
			}
			pages[p-1] = resp.Data
			logger.L().Debug().Int("page", p).Int("rows", len(resp.Data)).Msg("page done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	n, err := writeCSV(w, pages)
	if err != nil {
		return n, err
	}
	logger.L().Info().Int("rows", n).Dur("elapsed", time.Since(start)).Msg("export done")
	return n, nil
}

func writeCSV(w io.Writer, pages [][]models.StockRecord) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	n := 0
	for _, recs := range pages {
		for _, r := range recs {
			if err := cw.Write(r.Cells()); err != nil {
				return n, fmt.Errorf("write record: %w", err)
			}
			n++
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("flush csv: %w", err)
	}
	return n, nil
}

func clampParallel(parallel int) int {
	if parallel > 0 {
		if parallel > maxParallel {
			return maxParallel
		}
		return parallel
	}
	if c := runtime.NumCPU(); c < maxParallel {
		return c
	}
	return maxParallel
}
