package simpson

import "github.com/cockroachdb/errors"

// ErrInvalidStep is returned when a step size is not a finite positive number.
// A zero or negative step would make the range generator loop forever.
var ErrInvalidStep = errors.New("simpson: step must be finite and > 0")
