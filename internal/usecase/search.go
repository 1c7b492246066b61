package usecase

// SearchResult is one filtered listing. Count is the number of matches and
// Total the size of the collection the query ran over.
type SearchResult[T any] struct {
	Items []T
	Count int
	Total int
}

func newSearchResult[T any](items []T, total int) SearchResult[T] {
	return SearchResult[T]{Items: items, Count: len(items), Total: total}
}
