package dsu

import (
	"errors"
	"fmt"
)

// ErrItemNotFound indicates that an operation referenced a key that was
// never added to the forest. Match with errors.Is; the concrete error is
// always a *NotFoundError carrying the missing key(s).
var ErrItemNotFound = errors.New("dsu: no set contains item")

// NotFoundError reports which key(s) of an operation were absent from
// the forest. Items holds one entry when a single key was missing and
// two entries when both keys of a two-key operation were missing.
type NotFoundError struct {
	// Items are the missing keys, in argument order.
	Items []any
}

// Error renders the missing keys in the "no set contains X" form,
// naming both keys when both were absent.
func (e *NotFoundError) Error() string {
	if len(e.Items) == 1 {
		return fmt.Sprintf("dsu: no set contains %v", e.Items[0])
	}

	return fmt.Sprintf("dsu: no set contains %v and no set contains %v", e.Items[0], e.Items[1])
}

// Is makes errors.Is(err, ErrItemNotFound) hold for every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrItemNotFound
}

// notFound builds the error for the given missing keys (one or two).
func notFound(items ...any) error {
	return &NotFoundError{Items: items}
}
