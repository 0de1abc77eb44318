package models

const DefaultPerPage = 20

// Page is one slice of a newest-first history listing.
type Page[T any] struct {
	Items       []T
	Total       int64
	Pages       int
	CurrentPage int
}

// NormalizePage clamps the 1-indexed page and page size to usable values.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// PageCount returns ceil(total/perPage).
func PageCount(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
