package types

// Page is a half-open [Start, End) index window into a filtered and sorted
// record sequence. Pages are immutable values; the pagination helpers
// return a new Page rather than mutating their argument.
type Page struct {
	Start int
	End   int
}

// NewPage returns the first page window for the given page size.
func NewPage(pageSize int) Page {
	return Page{Start: 0, End: pageSize}
}

// PreviousPage shifts the window back by pageSize. When the window is
// already within the first pageSize records it resets to the first page,
// never going negative.
func PreviousPage(p Page, pageSize int) Page {
	if p.Start >= pageSize {
		return Page{Start: p.Start - pageSize, End: p.End - pageSize}
	}
	return Page{Start: 0, End: pageSize}
}

// NextPage shifts the window forward by pageSize. When the shifted window
// would run past total it clamps to the last pageSize records instead,
// with the start never below zero.
func NextPage(p Page, total, pageSize int) Page {
	if p.End+pageSize > total {
		start := total - pageSize
		if start < 0 {
			start = 0
		}
		return Page{Start: start, End: total}
	}
	return Page{Start: p.Start + pageSize, End: p.End + pageSize}
}

// Clamp bounds the window to a sequence of length n, returning the
// effective [start, end) pair. Out-of-range bounds clamp silently rather
// than fault, mirroring an empty or short page.
func (p Page) Clamp(n int) (int, int) {
	start, end := p.Start, p.End
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
