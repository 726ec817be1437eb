package repository

import "errors"

// ErrStaleVersion signals an optimistic-lock failure: the row was modified
// between read and write.
var ErrStaleVersion = errors.New("stale aggregate version")
