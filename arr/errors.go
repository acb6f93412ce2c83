package arr

import "errors"

// ErrNoKeys is returned by [Props] when called without any key.
var ErrNoKeys = errors.New("arr: expected at least one key")
