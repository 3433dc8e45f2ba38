package view

import (
	"strconv"

	"github.com/guttosm/stockpager/internal/domain/models"
)

// Direction marks a link that moves relative to the current page.
type Direction int

const (
	// DirNone is an explicit page link.
	DirNone Direction = iota
	// DirPrev moves one page back.
	DirPrev
	// DirNext moves one page forward.
	DirNext
)

// String returns "prev", "next" or "" for explicit page links.
func (d Direction) String() string {
	switch d {
	case DirPrev:
		return "prev"
	case DirNext:
		return "next"
	default:
		return ""
	}
}

// Target is where a pagination link leads: an explicit page, or a direction
// relative to whatever page is current when the link is followed.
type Target struct {
	Page      int
	Direction Direction
}

// Resolve returns the page to request when the link is followed while
// current is displayed. The result is not clamped; the requester does that.
func (t Target) Resolve(current int) int {
	switch t.Direction {
	case DirPrev:
		return current - 1
	case DirNext:
		return current + 1
	default:
		return t.Page
	}
}

// Link is one entry of the pagination control list.
type Link struct {
	Label  string
	Target Target
	Active bool
}

// Labels of the relative links at both ends of the control list.
const (
	PrevLabel = "< Prev"
	NextLabel = "Next >"
)

// BuildLinks returns a fresh control list: prev, pages 1..totalPages, next.
// The link for currentPage is marked active. totalPages is limited to
// 0..models.MaxTotalPages.
func BuildLinks(totalPages, currentPage int) []Link {
	totalPages = min(max(totalPages, 0), models.MaxTotalPages)
	links := make([]Link, 0, totalPages+2)
	links = append(links, Link{Label: PrevLabel, Target: Target{Direction: DirPrev}})
	for i := 1; i <= totalPages; i++ {
		links = append(links, Link{
			Label:  strconv.Itoa(i),
			Target: Target{Page: i},
			Active: i == currentPage,
		})
	}
	links = append(links, Link{Label: NextLabel, Target: Target{Direction: DirNext}})
	return links
}
