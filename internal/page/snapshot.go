package page

import (
	"embed"
	"html/template"

	"github.com/guttosm/stockpager/internal/domain/dto"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// TemplateName is the name gin renders the document with.
const TemplateName = "index.tmpl"

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("stockpager").ParseFS(templateFS, "templates/*.tmpl"))
}

// Snapshot returns the JSON view of every region.
func (d *Document) Snapshot(currentPage int) dto.PageView {
	out := dto.PageView{
		CurrentPage: currentPage,
		Heading:     regionView(d.heading),
		Description: regionView(d.description),
		Banner:      regionView(d.banner),
		Pagination:  dto.PaginationView{Links: []dto.LinkView{}},
		Table:       dto.TableView{Rows: [][]string{}},
	}
	if d.pagination != nil {
		out.Pagination.RegionView = regionView(&d.pagination.Element)
		for _, l := range d.pagination.links {
			out.Pagination.Links = append(out.Pagination.Links, dto.LinkView{
				Label:     l.Label,
				Page:      l.Target.Page,
				Direction: l.Target.Direction.String(),
				Active:    l.Active,
			})
		}
	} else {
		out.Pagination.RegionView = dto.RegionView{Hidden: true}
	}
	if d.table != nil {
		out.Table.RegionView = regionView(&d.table.Element)
		out.Table.Rows = d.table.Rows()
	} else {
		out.Table.RegionView = dto.RegionView{Hidden: true}
	}
	return out
}

func regionView(e *Element) dto.RegionView {
	if e == nil {
		return dto.RegionView{Hidden: true}
	}
	return dto.RegionView{Present: true, Hidden: e.hidden, Text: e.text}
}

// LinkData is one pagination link handed to the template.
type LinkData struct {
	Index  int
	Label  string
	Active bool
	Href   string
}

// RegionData is one region handed to the template.
type RegionData struct {
	Present bool
	Hidden  bool
	HTML    template.HTML
}

// ViewData is the template model for index.tmpl.
type ViewData struct {
	Title       string
	Heading     RegionData
	Pagination  RegionData
	Links       []LinkData
	Description RegionData
	Table       RegionData
	Rows        [][]string
	Banner      RegionData
}

// View builds the template model. href maps a link index to its click URL.
func (d *Document) View(title string, href func(index int) string) ViewData {
	v := ViewData{
		Title:       title,
		Heading:     regionData(d.heading),
		Description: regionData(d.description),
		Banner:      regionData(d.banner),
	}
	if d.pagination != nil {
		v.Pagination = regionData(&d.pagination.Element)
		for i, l := range d.pagination.links {
			v.Links = append(v.Links, LinkData{Index: i, Label: l.Label, Active: l.Active, Href: href(i)})
		}
	}
	if d.table != nil {
		v.Table = regionData(&d.table.Element)
		v.Rows = d.table.Rows()
	}
	return v
}

func regionData(e *Element) RegionData {
	if e == nil {
		return RegionData{}
	}
	return RegionData{Present: true, Hidden: e.hidden, HTML: e.markup}
}
