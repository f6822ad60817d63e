package listing

import "strings"

// PageSize matches the dashboard's fixed table page size.
const PageSize = 10

// windowSize bounds the page-number strip rendered under the tables.
const windowSize = 5

// Predicate reports whether an item matches the already-lowercased query.
type Predicate[T any] func(item T, query string) bool

// Filter returns the items matching query. An empty query returns the input
// slice unchanged. Matching is synchronous substring filtering, the same
// behavior the dashboard applies on every keystroke.
func Filter[T any](items []T, query string, match Predicate[T]) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Page is one slice of a filtered list plus the metadata the table controls
// need to render paging.
type Page[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int   `json:"total_items"`
	PageNumbers []int `json:"pages"`
}

// Paginate slices items into the requested page. Pages are 1-based; out of
// range requests clamp to the nearest valid page. Concatenating all pages in
// order reproduces the input exactly once.
func Paginate[T any](items []T, page int) Page[T] {
	totalPages := (len(items) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:       items[start:end],
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  len(items),
		PageNumbers: pageWindow(page, totalPages),
	}
}

// pageWindow returns up to windowSize consecutive page numbers centered on
// current, shifted to stay within [1, total].
func pageWindow(current, total int) []int {
	if total <= windowSize {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	start := current - windowSize/2
	if start < 1 {
		start = 1
	}
	if start+windowSize-1 > total {
		start = total - windowSize + 1
	}

	pages := make([]int, windowSize)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}
