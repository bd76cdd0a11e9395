package catalog

import "errors"

// ErrInvalidRange is the panic payload of [Range] when it is called with a
// zero step or with other than one to three arguments.
var ErrInvalidRange = errors.New("catalog: invalid range arguments")
