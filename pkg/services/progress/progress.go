package progress

// Step is one position in a traversal: Index is 1-based, Total is the length
// of the underlying slice.
type Step[T any] struct {
	Index int
	Total int
	Item  T
}

// Enumerate wraps items in Step values so callers can report progress without
// counting on their own.
func Enumerate[T any](items []T) []Step[T] {
	steps := make([]Step[T], len(items))
	for i, item := range items {
		steps[i] = Step[T]{Index: i + 1, Total: len(items), Item: item}
	}
	return steps
}
