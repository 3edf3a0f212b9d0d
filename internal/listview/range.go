package listview

// Ellipsis is the sentinel emitted by Range where page numbers are skipped.
const Ellipsis = -1

// rangeDelta is the number of pages shown on each side of the current page.
const rangeDelta = 2

// Range returns the page numbers to render as pagination buttons: the first
// and last page, a window of rangeDelta pages around current, and Ellipsis
// where a gap exists between those blocks. For totalPages <= 1 the result is
// empty, callers hide the controls entirely. No page number is emitted twice.
func Range(current, totalPages int) []int {
	if totalPages <= 1 {
		return []int{}
	}

	current = ClampPage(current, totalPages)

	lo := current - rangeDelta
	if lo < 2 {
		lo = 2
	}

	hi := current + rangeDelta
	if hi > totalPages-1 {
		hi = totalPages - 1
	}

	out := make([]int, 0, totalPages)
	out = append(out, 1)

	if lo > 2 {
		out = append(out, Ellipsis)
	}

	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}

	if hi < totalPages-1 {
		out = append(out, Ellipsis)
	}

	out = append(out, totalPages)

	return out
}
