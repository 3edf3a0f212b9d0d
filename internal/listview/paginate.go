package listview

// Paginate returns the records of the requested page. page is 1-based,
// size < 1 is normalized to 1. A page past the end of the list yields an
// empty slice, it is the caller's job to re-clamp the page number via
// ClampPage when the underlying list shrinks.
func Paginate[T any](items []T, page, size int) []T {
	if size < 1 {
		size = 1
	}

	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return out
}

// TotalPages returns the number of pages needed for total records at the
// given page size, at least 1. size < 1 is normalized to 1.
func TotalPages(total, size int) int {
	if size < 1 {
		size = 1
	}

	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}

	return pages
}

// ClampPage forces page into [1, totalPages]. A table whose record list
// shrank below the current page must show the last valid page instead of an
// empty one.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		return 1
	}

	if page > totalPages {
		return totalPages
	}

	return page
}
