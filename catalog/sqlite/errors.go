package sqlite

import "errors"

// ErrBadHeader is returned when a course CSV file does not carry the
// canonical column header.
var ErrBadHeader = errors.New("unexpected course file header")
