package page

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/guttosm/stockpager/internal/view"
)

// Region names accepted by Without.
const (
	RegionHeading     = "heading"
	RegionPagination  = "pagination"
	RegionDescription = "description"
	RegionTable       = "table"
	RegionBanner      = "banner"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Element is an in-memory display region.
type Element struct {
	hidden bool
	text   string
	markup template.HTML
}

var _ view.Region = (*Element)(nil)

// Exists is false for a nil element.
func (e *Element) Exists() bool { return e != nil }

// Text returns the content with any markup stripped.
func (e *Element) Text() string { return e.text }

// SetText replaces the content with escaped plain text.
func (e *Element) SetText(text string) {
	e.text = text
	e.markup = template.HTML(template.HTMLEscapeString(text))
}

// SetHTML replaces the content with trusted markup.
func (e *Element) SetHTML(markup string) {
	e.markup = template.HTML(markup)
	e.text = strings.TrimSpace(tagPattern.ReplaceAllString(markup, ""))
}

// HTML returns the content as markup.
func (e *Element) HTML() template.HTML { return e.markup }

func (e *Element) Show()        { e.hidden = false }
func (e *Element) Hide()        { e.hidden = true }
func (e *Element) Hidden() bool { return e.hidden }

// LinkList is the in-memory pagination control list.
type LinkList struct {
	Element
	links []view.Link
	// builds counts how many times the list was built from scratch.
	builds int
}

var _ view.LinkList = (*LinkList)(nil)

func (l *LinkList) Exists() bool { return l != nil }
func (l *LinkList) Len() int     { return len(l.links) }

func (l *LinkList) Links() []view.Link {
	out := make([]view.Link, len(l.links))
	copy(out, l.links)
	return out
}

func (l *LinkList) Build(links []view.Link) {
	l.links = make([]view.Link, len(links))
	copy(l.links, links)
	l.builds++
}

func (l *LinkList) SetActive(i int, active bool) {
	if i < 0 || i >= len(l.links) {
		return
	}
	l.links[i].Active = active
}

// Builds reports how many times the list has been built from scratch.
func (l *LinkList) Builds() int { return l.builds }

// Table is the in-memory results table.
type Table struct {
	Element
	rows [][]string
}

var _ view.Table = (*Table)(nil)

func (t *Table) Exists() bool { return t != nil }

func (t *Table) Rows() [][]string {
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

func (t *Table) ReplaceRows(rows [][]string) {
	t.rows = make([][]string, len(rows))
	for i, r := range rows {
		t.rows[i] = append([]string(nil), r...)
	}
}

// Document is the server-side stand-in for the browser page: five regions,
// all hidden at rest. It implements view.Surface.
//
// A Document is not safe for concurrent use; callers serialize display passes.
type Document struct {
	heading     *Element
	pagination  *LinkList
	description *Element
	table       *Table
	banner      *Element
}

var _ view.Surface = (*Document)(nil)

// Option customizes a Document.
type Option func(*Document)

// Without removes the named regions from the document, e.g. to model a page
// template that lacks a banner.
func Without(regions ...string) Option {
	return func(d *Document) {
		for _, r := range regions {
			switch r {
			case RegionHeading:
				d.heading = nil
			case RegionPagination:
				d.pagination = nil
			case RegionDescription:
				d.description = nil
			case RegionTable:
				d.table = nil
			case RegionBanner:
				d.banner = nil
			}
		}
	}
}

// NewDocument returns a document with every region present and hidden.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		heading:     &Element{hidden: true},
		pagination:  &LinkList{Element: Element{hidden: true}},
		description: &Element{hidden: true},
		table:       &Table{Element: Element{hidden: true}},
		banner:      &Element{hidden: true},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) Heading() view.Region {
	if d.heading == nil {
		return view.MissingRegion
	}
	return d.heading
}

func (d *Document) Pagination() view.LinkList {
	if d.pagination == nil {
		return view.MissingLinks
	}
	return d.pagination
}

func (d *Document) Description() view.Region {
	if d.description == nil {
		return view.MissingRegion
	}
	return d.description
}

func (d *Document) Table() view.Table {
	if d.table == nil {
		return view.MissingTable
	}
	return d.table
}

func (d *Document) Banner() view.Region {
	if d.banner == nil {
		return view.MissingRegion
	}
	return d.banner
}

// PaginationList exposes the concrete control list (nil when absent).
func (d *Document) PaginationList() *LinkList { return d.pagination }
