package utils

import (
	"fmt"
	"math"
)

// Page describes one slice of an in-memory result set.
type Page struct {
	Number     int
	Limit      int
	TotalCount int
	TotalPages int
	Start      int // inclusive offset
	End        int // exclusive offset
}

// Paginate computes offsets for a 1-based page number. Pages past the end
// yield an empty window rather than an error.
func Paginate(total, page, limit int) Page {
	if limit <= 0 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}

	// Compare before multiplying: the offset of a huge page number overflows.
	start := total
	if page-1 <= total/limit {
		start = min((page-1)*limit, total)
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page{
		Number:     page,
		Limit:      limit,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Start:      start,
		End:        end,
	}
}

// Showing renders the "1-10 of 42" caption for the page.
func (p Page) Showing() string {
	if p.TotalCount == 0 || p.Start >= p.End {
		return fmt.Sprintf("0 of %d", p.TotalCount)
	}
	return fmt.Sprintf("%d-%d of %d", p.Start+1, p.End, p.TotalCount)
}

// Window returns at most five page numbers to offer as buttons: the first
// five near the start, the last five near the end, otherwise two either side
// of the current page.
func (p Page) Window() []int {
	return PageWindow(p.Number, p.TotalPages)
}

const windowSize = 5

func PageWindow(current, totalPages int) []int {
	n := min(windowSize, totalPages)
	if n <= 0 {
		return []int{}
	}

	var first int
	switch {
	case totalPages <= windowSize, current <= 3:
		first = 1
	case current >= totalPages-2:
		first = totalPages - windowSize + 1
	default:
		first = current - 2
	}

	pages := make([]int, n)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}
