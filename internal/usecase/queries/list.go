package queries

import (
	"time"

	"spotlight-ledger/internal/pkg/errs"
	"spotlight-ledger/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errs.New("record not found")
	ErrInvalidFilter = errs.New("invalid list filter")
)

func buildFilter(p ListParams, validStatus func(string) bool) (ListFilter, error) {
	f := ListFilter{
		AccountID: p.AccountID,
		Status:    p.Status,
		Limit:     patch.Clamp(p.Limit, 1, MaxListLimit),
	}
	if p.Limit == 0 {
		f.Limit = DefaultListLimit
	}
	if f.Status != "" && validStatus != nil && !validStatus(f.Status) {
		return ListFilter{}, errs.Mark(errs.Newf("unknown status %q", f.Status), ErrInvalidFilter)
	}
	if p.Cursor != "" {
		t, id, err := DecodeBeforeCursor(p.Cursor)
		if err != nil {
			return ListFilter{}, errs.Mark(err, ErrInvalidFilter)
		}
		f.BeforeTime = &t
		f.BeforeID = id
	}
	return f, nil
}

// paginate trims the look-ahead row a store returned and derives the next cursor.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) *Page[T] {
	page := &Page[T]{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		t, id := key(page.Items[limit-1])
		page.NextCursor = EncodeBeforeCursor(t, id)
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	return page
}
