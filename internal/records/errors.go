package records

import "errors"

var ErrNotFound = errors.New("not found")
