package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/logger"
)

// StatusTransportFailure is substituted when a request never reached the
// server (no connectivity, DNS failure, timeout, cancelled context).
const StatusTransportFailure = http.StatusRequestTimeout

// maxBodyBytes caps how much of an upstream body is read.
const maxBodyBytes = 4 << 20

// Doer is the subset of *http.Client used by Requester.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester issues page-scoped GET requests against a fixed base address and
// turns every outcome into a models.PageResponse.
//
// Responsibilities:
//   - Clamp invalid page numbers to 1.
//   - Perform exactly one request per call (no retry, no backoff).
//   - Encode failures in the payload instead of returning errors.
type Requester struct {
	baseURL string
	client  Doer
}

// NewRequester builds a Requester for baseURL. A nil client falls back to
// http.DefaultClient.
func NewRequester(baseURL string, client Doer) *Requester {
	if client == nil {
		client = http.DefaultClient
	}
	return &Requester{baseURL: baseURL, client: client}
}

// NormalizePage returns page, or 1 when page is not a positive integer.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ParsePage converts user input (query strings, link attributes) into a page
// number. Anything that is not a positive integer yields 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 1
	}
	return NormalizePage(n)
}

// URL returns the request target for page: the base address with
// "?page=<page>" appended verbatim.
func (r *Requester) URL(page int) string {
	return fmt.Sprintf("%s?page=%d", r.baseURL, NormalizePage(page))
}

// RequestPage fetches one page of stock records.
//
// Behavior:
//   - Transport failures are reported as status 408 with an empty payload.
//   - The body is decoded as JSON for every status; an undecodable body is
//     replaced by an empty payload and logged.
//   - Any status other than 200 is recorded in PageResponse.ResponseStatus.
//
// RequestPage never fails: callers inspect ResponseStatus and Data.
func (r *Requester) RequestPage(ctx context.Context, page int) models.PageResponse {
	page = NormalizePage(page)
	target := r.URL(page)

	status, body := r.fetch(ctx, target)

	var resp models.PageResponse
	if body != nil {
		if err := json.Unmarshal(body, &resp); err != nil {
			logger.L().Error().
				Err(err).
				Str("base_url", r.baseURL).
				Int("page", page).
				Int("status", status).
				Msg("could not decode stock data")
			resp = models.PageResponse{}
		}
	}

	if status != http.StatusOK {
		s := models.Int(status)
		resp.ResponseStatus = &s
	}
	return resp
}

// fetch performs the single network call and returns the status and raw body.
func (r *Requester) fetch(ctx context.Context, target string) (int, []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logger.L().Warn().Err(err).Str("url", target).Msg("invalid stock request")
		return StatusTransportFailure, nil
	}
	req.Header.Set("Accept", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		logger.L().Warn().Err(err).Str("url", target).Msg("stock request failed")
		return StatusTransportFailure, nil
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		logger.L().Warn().Err(err).Str("url", target).Int("status", res.StatusCode).Msg("stock response truncated")
		return res.StatusCode, nil
	}
	return res.StatusCode, body
}
