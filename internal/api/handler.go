package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpager/internal/domain/dto"
	"github.com/guttosm/stockpager/internal/fetcher"
	"github.com/guttosm/stockpager/internal/middleware"
	"github.com/guttosm/stockpager/internal/page"
	"github.com/guttosm/stockpager/internal/pager"
	"github.com/guttosm/stockpager/internal/service"
)

const (
	// SessionCookie carries the viewer session id.
	SessionCookie = "stockpager_session"

	pageTitle         = "Stock Data"
	defaultFetchLimit = 20
	maxFetchLimit     = 100
)

// Handler provides HTTP handlers for the stock page and its JSON views.
//
// Responsibilities:
//   - Resolve the viewer session from its cookie
//   - Run fetch-and-render cycles through the session's controller
//   - Render the document as HTML, or as a JSON snapshot
//   - Expose the fetch log
type Handler struct {
	svc      service.PageService
	sessions *pager.Store
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.PageService): upstream page requests, optionally logged.
//   - sessions (*pager.Store): per-viewer documents and controllers.
func NewHandler(svc service.PageService, sessions *pager.Store) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// ShowPage handles GET / requests.
//
// With a "page" query the session's controller requests that page. Without
// one, the session's current document is rendered as is, or page 1 is
// requested on the first visit.
//
// ShowPage godoc
// @Summary      Render the stock page
// @Description  Runs a display pass for the requested page and renders the document as HTML
// @Tags         page
// @Produce      html
// @Param        page  query     int     false  "Page number (non-numeric or < 1 means 1)"  example(2)
// @Success      200   {string}  string  "HTML document"
// @Router       / [get]
func (h *Handler) ShowPage(c *gin.Context) {
	sess := h.session(c)
	ctx := c.Request.Context()
	raw, explicit := c.GetQuery("page")

	var data page.ViewData
	sess.Do(func(ctl *pager.Controller, doc *page.Document) {
		switch {
		case explicit:
			ctl.Show(ctx, fetcher.ParsePage(raw))
		case !ctl.Rendered():
			ctl.Show(ctx, 1)
		}
		data = doc.View(pageTitle, linkHref)
	})

	c.HTML(http.StatusOK, page.TemplateName, data)
}

// FollowLink handles GET /links/:index requests: a click on pagination link
// index of the session's document.
//
// FollowLink godoc
// @Summary      Follow a pagination link
// @Description  Resolves the link target (page, or current page -/+ 1 for prev/next), runs a display pass and redirects to the page
// @Tags         page
// @Produce      json
// @Param        index  path      int                true  "Link position in the pagination list"  example(0)
// @Success      303    {string}  string             "Redirect to /"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404    {object}  dto.ErrorResponse  "Unbound link"
// @Router       /links/{index} [get]
func (h *Handler) FollowLink(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid link index", err)
		return
	}

	sess := h.session(c)
	ctx := c.Request.Context()
	var clickErr error
	sess.Do(func(ctl *pager.Controller, _ *page.Document) {
		_, clickErr = ctl.Click(ctx, index)
	})
	if errors.Is(clickErr, pager.ErrUnboundLink) {
		middleware.AbortWithError(c, http.StatusNotFound, "link not found", clickErr)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// GetPage handles GET /api/v1/page requests.
//
// GetPage godoc
// @Summary      Display snapshot of a page
// @Description  Runs one display pass on a fresh document and returns the state of every region
// @Tags         page
// @Produce      json
// @Param        page  query     int           false  "Page number (non-numeric or < 1 means 1)"  example(3)
// @Success      200   {object}  dto.PageView  "Success"
// @Router       /api/v1/page [get]
func (h *Handler) GetPage(c *gin.Context) {
	p := fetcher.ParsePage(c.Query("page"))
	doc, ctl := pager.Standalone(c.Request.Context(), h.svc, p)
	c.JSON(http.StatusOK, doc.Snapshot(ctl.CurrentPage()))
}

// ListFetches handles GET /api/v1/fetches requests.
//
// ListFetches godoc
// @Summary      Recent upstream fetches
// @Description  Returns the most recent fetch log entries, newest first
// @Tags         fetches
// @Produce      json
// @Param        limit  query     int                   false  "Max entries (1-100)"  example(20)
// @Success      200    {object}  dto.FetchLogResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse     "Internal Error"
// @Failure      503    {object}  dto.ErrorResponse     "Fetch log disabled"
// @Router       /api/v1/fetches [get]
func (h *Handler) ListFetches(c *gin.Context) {
	limit := defaultFetchLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxFetchLimit {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("limit must be an integer between 1 and 100", err))
			return
		}
		limit = n
	}

	recs, err := h.svc.RecentFetches(c.Request.Context(), limit)
	if errors.Is(err, service.ErrFetchLogDisabled) {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("fetch log is disabled", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list fetches", err))
		return
	}

	resp := dto.FetchLogResponse{Fetches: make([]dto.FetchEntry, 0, len(recs))}
	for _, r := range recs {
		resp.Fetches = append(resp.Fetches, dto.FetchEntry{
			Page:      r.Page,
			Status:    r.Status,
			RowCount:  r.RowCount,
			LatencyMs: r.LatencyMs,
			FetchedAt: r.FetchedAt.UTC().Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// session returns the viewer's session, starting one (and setting its cookie)
// when the request carries none or an expired one.
func (h *Handler) session(c *gin.Context) *pager.Session {
	id, _ := c.Cookie(SessionCookie)
	sess, created := h.sessions.GetOrCreate(id)
	if created {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

func linkHref(index int) string {
	return "/links/" + strconv.Itoa(index)
}
