package domain

// Batch is the explicit insert/update split of a mixed payload collection,
// produced once at the request boundary instead of re-checking identifier
// presence in every write path.
type Batch[T any] struct {
	Insert []T
	Update []T
}

// Partition classifies items by identifier presence: a positive id means the
// row is already persisted and belongs to Update, anything else to Insert.
// Insert and Update together always cover the input exactly.
func Partition[T any](items []T, id func(T) int64) Batch[T] {
	var b Batch[T]
	for _, it := range items {
		if id(it) > 0 {
			b.Update = append(b.Update, it)
		} else {
			b.Insert = append(b.Insert, it)
		}
	}
	return b
}
