// Package view derives display state from a page response and applies it to
// an abstract display surface.
//
// The package never touches HTML or a browser DOM. Every UI region is reached
// through a small capability interface, so the same display pass drives the
// server-side document in package page and the in-memory fakes used in tests.
package view

// Region is a single display area that can hold text and be hidden.
type Region interface {
	// Exists reports whether the region is present on the surface.
	Exists() bool
	// Text returns the region's plain text content.
	Text() string
	// SetText replaces the content with plain text.
	SetText(text string)
	// SetHTML replaces the content with trusted markup.
	SetHTML(markup string)
	Show()
	Hide()
	Hidden() bool
}

// LinkList is the pagination control list.
type LinkList interface {
	Region
	// Len returns the number of links currently rendered.
	Len() int
	// Links returns a copy of the rendered links in order.
	Links() []Link
	// Build replaces the whole list.
	Build(links []Link)
	// SetActive toggles the active flag of the link at index i.
	SetActive(i int, active bool)
}

// Table is the results table; only its body rows are managed.
type Table interface {
	Region
	// Rows returns a copy of the body rows.
	Rows() [][]string
	// ReplaceRows tears down the body and renders rows in order.
	ReplaceRows(rows [][]string)
}

// Surface gives access to the five regions a display pass writes to.
//
// Accessors never fail: a region that is absent is returned as one of the
// Missing sentinels (or nil), and the display pass skips it.
type Surface interface {
	Heading() Region
	Pagination() LinkList
	Description() Region
	Table() Table
	Banner() Region
}

// Sentinels returned by surfaces for regions they do not have.
var (
	MissingRegion Region   = notFound{}
	MissingLinks  LinkList = notFound{}
	MissingTable  Table    = notFound{}
)

type notFound struct{}

func (notFound) Exists() bool           { return false }
func (notFound) Text() string           { return "" }
func (notFound) SetText(string)         {}
func (notFound) SetHTML(string)         {}
func (notFound) Show()                  {}
func (notFound) Hide()                  {}
func (notFound) Hidden() bool           { return true }
func (notFound) Len() int               { return 0 }
func (notFound) Links() []Link          { return nil }
func (notFound) Build([]Link)           {}
func (notFound) SetActive(int, bool)    {}
func (notFound) Rows() [][]string       { return nil }
func (notFound) ReplaceRows([][]string) {}

// present reports whether r can be written to.
func present(r Region) bool {
	return r != nil && r.Exists()
}
