package i

import "errors"

// ErrRecordNotFound is returned by archives when a lookup has no match.
var ErrRecordNotFound = errors.New("record not found")
