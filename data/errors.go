package data

import "errors"

// ErrMissing is the error kind for every "required thing not present" failure:
// absent children, absent attributes, and derived record fields that cannot be
// resolved. Callers test for it with errors.Is.
var ErrMissing = errors.New("missing data")
