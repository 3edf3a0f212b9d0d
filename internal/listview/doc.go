// Package listview implements the shared table utilities used by the admin
// back office: free-text plus exact-match filtering, page slicing and the
// page-number range shown as pagination controls. All functions are pure,
// they never mutate the input slice and always return a derived view.
//
// Every admin table goes through the same pipeline:
//
//	rows := listview.Filter(items, crit, fields, value)
//	page := listview.ClampPage(page, listview.TotalPages(len(rows), size))
//	view := listview.Paginate(rows, page, size)
//	nums := listview.Range(page, listview.TotalPages(len(rows), size))
package listview
