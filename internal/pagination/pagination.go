// Package pagination slices ordered result sets into fixed-size pages.
package pagination

// PageSize is the number of questions returned per page.
const PageSize = 10

// Page returns the 1-based page of items together with the total length of
// the input. Pages before the first or past the last yield an empty slice;
// the caller decides whether that is an error. The input is never mutated.
func Page[T any](items []T, page, size int) ([]T, int) {
	total := len(items)

	start := (page - 1) * size
	if page < 1 || start >= total {
		return []T{}, total
	}

	end := start + size
	if end > total {
		end = total
	}

	return items[start:end], total
}
