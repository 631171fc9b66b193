package utils

// PaginationMeta mirrors the paging contract every list endpoint exposes.
type PaginationMeta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// Paginated wraps a page of rows together with its meta block.
type Paginated[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// Paginate formats one page of results. hasNext compares the absolute offset
// of the last returned row against the total; hasPrev is simply page > 1.
func Paginate[T any](data []T, page, limit, total int) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	skip := (page - 1) * limit

	return Paginated[T]{
		Data: data,
		Meta: PaginationMeta{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasNext: skip+len(data) < total,
			HasPrev: page > 1,
		},
	}
}
