package view

// Page is one window over an ordered collection, together with the set of
// valid page numbers a caller can navigate to.
type Page[T any] struct {
	// Slice holds the items visible on the current page.
	Slice []T `json:"slice"`
	// Range is the ordered sequence of valid page numbers, 1..ceil(n/size).
	Range []int `json:"range"`
	// Number is the effective page number after adjustment.
	Number int `json:"page"`
}

// Paginate windows items onto a 1-based page of pageSize entries.
//
// When the requested page has become empty because items were removed (the
// sole entry on the last page was deleted), the page number is walked back
// until the slice is non-empty, so the viewer is never stranded on an empty
// page. An empty collection yields an empty range and slice with the page
// number left untouched.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	if len(items) == 0 {
		return Page[T]{Slice: []T{}, Range: []int{}, Number: page}
	}

	pageCount := (len(items) + pageSize - 1) / pageSize

	rng := make([]int, pageCount)
	for i := range rng {
		rng[i] = i + 1
	}

	for page > 1 && sliceFor(items, page, pageSize) == nil {
		page--
	}

	slice := sliceFor(items, page, pageSize)
	if slice == nil {
		slice = []T{}
	}

	return Page[T]{Slice: slice, Range: rng, Number: page}
}

func sliceFor[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
