package pager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/page"
	"github.com/guttosm/stockpager/internal/view"
)

// stubFetcher serves a fixed number of pages of perPage rows and records
// every requested page.
type stubFetcher struct {
	totalPages int
	perPage    int
	failPage   int
	requested  []int
}

func (s *stubFetcher) Fetch(_ context.Context, p int) models.PageResponse {
	s.requested = append(s.requested, p)
	if p < 1 {
		p = 1
	}
	if p == s.failPage {
		st := models.Int(500)
		return models.PageResponse{ResponseStatus: &st}
	}
	resp := models.PageResponse{
		Page:       models.Int(p),
		PerPage:    models.Int(s.perPage),
		Total:      models.Int(s.totalPages * s.perPage),
		TotalPages: models.Int(s.totalPages),
	}
	if p <= s.totalPages {
		for i := 0; i < s.perPage; i++ {
			resp.Data = append(resp.Data, models.StockRecord{Date: models.RawValue(`"d"`)})
		}
	}
	return resp
}

func TestController_ShowBindsLinksOnce(t *testing.T) {
	f := &stubFetcher{totalPages: 4, perPage: 2}
	doc := page.NewDocument()
	c := NewController(f, doc)

	assert.False(t, c.Rendered())
	st := c.Show(context.Background(), 1)

	assert.True(t, c.Rendered())
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, 1, c.CurrentPage())
	assert.Equal(t, 6, c.Bound())
	assert.Equal(t, "1", doc.Heading().Text())
}

func TestController_ClickResolvesTargets(t *testing.T) {
	f := &stubFetcher{totalPages: 4, perPage: 2}
	doc := page.NewDocument()
	c := NewController(f, doc)
	ctx := context.Background()

	c.Show(ctx, 1)

	// links: 0=prev, 1..4=pages, 5=next
	_, err := c.Click(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, c.CurrentPage())

	_, err = c.Click(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, c.CurrentPage())

	_, err = c.Click(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, c.CurrentPage())

	assert.Equal(t, []int{1, 3, 4, 3}, f.requested)
	assert.Equal(t, 1, doc.PaginationList().Builds())

	links := doc.Pagination().Links()
	for i, l := range links {
		assert.Equal(t, i == 3, l.Active, "link %d", i)
	}
}

func TestController_PrevFromFirstPageRequestsZero(t *testing.T) {
	f := &stubFetcher{totalPages: 2, perPage: 1}
	c := NewController(f, page.NewDocument())
	ctx := context.Background()

	c.Show(ctx, 1)
	_, err := c.Click(ctx, 0)
	require.NoError(t, err)

	// the requester clamps 0 to 1; the controller passes the raw target on
	assert.Equal(t, []int{1, 0}, f.requested)
	assert.Equal(t, 1, c.CurrentPage())
}

func TestController_ErrorResetsCurrentPage(t *testing.T) {
	f := &stubFetcher{totalPages: 3, perPage: 1, failPage: 2}
	doc := page.NewDocument()
	c := NewController(f, doc)
	ctx := context.Background()

	c.Show(ctx, 1)
	_, err := c.Click(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, c.CurrentPage())
	assert.Equal(t, view.MsgRequestException, doc.Banner().Text())

	// next from the failed state asks for page 1
	_, err = c.Click(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, f.requested)
}

func TestController_UnboundLink(t *testing.T) {
	c := NewController(&stubFetcher{totalPages: 1, perPage: 1}, page.NewDocument())
	c.Show(context.Background(), 1)

	_, err := c.Click(context.Background(), 0)
	assert.True(t, errors.Is(err, ErrUnboundLink))
}
