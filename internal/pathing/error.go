package pathing

import "errors"

// ErrEmptyPath occurs when an empty string is given where a path is
// required.
var ErrEmptyPath = errors.New("empty path")
