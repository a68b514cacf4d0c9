package filtering

// Paginate slices an ordered sequence into the requested page, at most
// pageSize items. Pages are numbered from 1. The function does not validate
// pageNumber against the total page count; that is the caller's contract, so
// an out-of-range page degrades to an empty result rather than an error.
// Non-positive pageSize or pageNumber also yield an empty result.
func Paginate[T any](items []T, pageSize, pageNumber int) []T {
	if pageSize < 1 || pageNumber < 1 {
		return nil
	}

	start := (pageNumber - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// PageCount returns how many pages the sequence spans at the given size.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
