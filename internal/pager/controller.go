// Package pager runs the fetch-and-render cycle for one viewer and binds
// pagination links to page requests.
package pager

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/logger"
	"github.com/guttosm/stockpager/internal/view"
)

// ErrUnboundLink is returned when a click targets a link no handler was
// attached to.
var ErrUnboundLink = errors.New("pagination link is not bound")

// Fetcher produces the payload for a page request.
type Fetcher interface {
	Fetch(ctx context.Context, page int) models.PageResponse
}

// Controller owns the explicit "current page" state of one viewer and the
// handlers attached to its pagination links.
//
// A Controller is not safe for concurrent use; a Session serializes access.
type Controller struct {
	fetch    Fetcher
	surface  view.Surface
	current  int
	rendered bool
	handlers []view.Target
}

// NewController wires a fetcher to the surface it renders into.
func NewController(f Fetcher, s view.Surface) *Controller {
	return &Controller{fetch: f, surface: s}
}

// Show requests page and runs one display pass with the result.
// The current page becomes whatever the response reports (0 when absent).
func (c *Controller) Show(ctx context.Context, page int) view.DisplayState {
	resp := c.fetch.Fetch(ctx, page)
	st := view.Render(c.surface, resp, view.Hooks{PaginationReady: c.bind})
	c.current = st.CurrentPage
	c.rendered = true
	return st
}

// Click follows the pagination link at index: explicit page links request
// their page, prev/next request the current page minus/plus one.
func (c *Controller) Click(ctx context.Context, index int) (view.DisplayState, error) {
	if index < 0 || index >= len(c.handlers) {
		return view.DisplayState{}, fmt.Errorf("link %d: %w", index, ErrUnboundLink)
	}
	target := c.handlers[index].Resolve(c.current)
	return c.Show(ctx, target), nil
}

// CurrentPage is the page reported by the last response.
func (c *Controller) CurrentPage() int { return c.current }

// Rendered reports whether at least one display pass ran.
func (c *Controller) Rendered() bool { return c.rendered }

// Bound returns the number of links with an attached handler.
func (c *Controller) Bound() int { return len(c.handlers) }

// bind is the readiness continuation: it attaches one handler per link of the
// freshly built control list.
func (c *Controller) bind() {
	links := c.surface.Pagination().Links()
	c.handlers = make([]view.Target, len(links))
	for i, l := range links {
		c.handlers[i] = l.Target
	}
	logger.L().Debug().Int("links", len(links)).Msg("pagination links bound")
}
