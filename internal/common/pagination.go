package common

import "strconv"

const (
	// DefaultLimit is the page size used when the client omits or mangles the
	// limit parameter.
	DefaultLimit = 10
	// DefaultPage is the page used when the client omits or mangles the page
	// parameter. Pages are 1-indexed.
	DefaultPage = 1
)

// Pagination carries a normalized LIMIT/OFFSET pair for a paginated query.
type Pagination struct {
	Limit  int
	Offset int
}

// NewPagination converts the raw p and limit query parameters into a usable
// LIMIT/OFFSET pair. Values that are empty, non-numeric, zero, or negative
// fall back to the defaults, so the result is always valid and the function
// never fails. The offset is the zero-based row skip count (page-1)*limit.
func NewPagination(rawPage, rawLimit string) Pagination {
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil || page <= 0 {
		page = DefaultPage
	}

	return Pagination{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// MaxPages returns how many pages a collection of count rows spans at the
// given page size, rounding up so a final short page still counts.
func MaxPages(count, limit int) int {
	if count <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

// PageOutOfRange reports whether the requested offset lies beyond the last
// valid page. An empty collection is a special case: its first page is still
// in range and must come back as an empty success, so offset 0 is always
// admissible when maxPages is 0 (the general formula would yield a negative
// bound and wrongly reject it).
func PageOutOfRange(offset, maxPages, limit int) bool {
	if maxPages == 0 {
		return offset != 0
	}
	return offset > (maxPages-1)*limit
}
