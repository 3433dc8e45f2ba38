package view

import (
	"strconv"

	"github.com/guttosm/stockpager/internal/domain/models"
	"github.com/guttosm/stockpager/internal/logger"
)

// Hooks are the continuations a display pass may invoke.
type Hooks struct {
	// PaginationReady runs once right after a fresh control list is built,
	// so a binder can attach handlers to the new links.
	PaginationReady func()
}

// Render derives the state of resp and applies it to s in one display pass.
func Render(s Surface, resp models.PageResponse, hooks Hooks) DisplayState {
	if _, clamped := resp.PageCount(); clamped {
		logger.L().Warn().
			Int("total_pages", int(resp.TotalPages)).
			Int("max", models.MaxTotalPages).
			Msg("total_pages clamped")
	}
	st := Derive(resp)
	Apply(s, st, hooks)
	return st
}

// Apply synchronizes every region of s with st.
//
// Steps run in a fixed order and later steps may hide what earlier steps
// revealed: heading, pagination, description, table, banner. A region that is
// missing from the surface is logged and skipped; the pass always completes.
func Apply(s Surface, st DisplayState, hooks Hooks) {
	applyHeading(s.Heading(), st)
	applyPagination(s.Pagination(), st, hooks)
	applyDescription(s.Description(), st)
	applyTable(s.Table(), st)
	applyBanner(s, st)
}

func applyHeading(h Region, st DisplayState) {
	if !present(h) {
		logger.L().Warn().Str("region", "heading").Msg("no page header detected")
		return
	}
	h.Show()
	h.SetText(strconv.Itoa(st.CurrentPage))
}

func applyPagination(list LinkList, st DisplayState, hooks Hooks) {
	if list == nil || !list.Exists() {
		logger.L().Warn().Str("region", "pagination").Msg("no pagination list detected")
		return
	}
	if st.TotalPages <= 1 {
		list.Hide()
		return
	}
	list.Show()

	if list.Len() < 1 {
		list.Build(BuildLinks(st.TotalPages, st.CurrentPage))
		if hooks.PaginationReady != nil {
			hooks.PaginationReady()
		}
		return
	}

	// Existing list: only interior links change, prev/next stay as they are.
	for i := 1; i < list.Len()-1; i++ {
		list.SetActive(i, i == st.CurrentPage)
	}
}

func applyDescription(d Region, st DisplayState) {
	if !present(d) {
		logger.L().Error().Str("region", "description").Msg("no results description area found")
		return
	}
	d.Show()
	if markup := st.DescriptionHTML(); markup != "" {
		d.SetHTML(markup)
		return
	}
	d.SetText("")
}

func applyTable(t Table, st DisplayState) {
	if t == nil || !t.Exists() {
		logger.L().Error().Str("region", "table").Msg("no results table element found")
		return
	}
	t.ReplaceRows(st.TableRows())
	t.Show()
}

func applyBanner(s Surface, st DisplayState) {
	banner := s.Banner()
	if !present(banner) {
		logger.L().Error().Str("region", "banner").Msg("default message area not found")
		return
	}

	msg := st.BannerMessage()
	if msg == "" {
		banner.Hide()
		return
	}
	hideDataRegions(s)
	banner.SetText(msg)
	banner.Show()
}

// hideDataRegions hides heading, description and table. Pagination is left
// alone so the viewer can still move to another page.
func hideDataRegions(s Surface) {
	if h := s.Heading(); present(h) {
		h.Hide()
	}
	if d := s.Description(); present(d) {
		d.Hide()
	}
	if t := s.Table(); t != nil && t.Exists() {
		t.Hide()
	}
}
