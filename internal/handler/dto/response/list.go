package response

import (
	"spotlight-ledger/internal/usecase/queries"
)

// PageResponse is the wire shape of every list endpoint.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	Count      int    `json:"count"`
}

func FromPage[T any](page *queries.Page[T]) *PageResponse[T] {
	return &PageResponse[T]{
		Items:      page.Items,
		NextCursor: page.NextCursor,
		Count:      len(page.Items),
	}
}
