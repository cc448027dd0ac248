package pagination

// OffsetResult is one page of an ordered collection.
type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

func NewOffsetResult[T any](items []T, total int, page int, size int) *OffsetResult[T] {
	offset := OffsetRequest{Page: page, Size: size}.Offset()
	hasMore := offset < total && total-offset > size

	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    page,
		Size:    size,
		HasMore: hasMore,
	}
}

// Paginate cuts the requested page out of all. Pages past the end are empty.
func Paginate[T any](all []T, req OffsetRequest) *OffsetResult[T] {
	req.Normalize()

	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))

	items := make([]T, end-start)
	copy(items, all[start:end])
	return NewOffsetResult(items, len(all), req.Page, req.Size)
}
