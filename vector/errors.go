// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a component index outside [0,2].
// At/Set MUST return this, not panic.
var ErrOutOfRange = errors.New("vector: index out of range")

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// vectorErrorf wraps err with the method tag and the offending index.
func vectorErrorf(method string, index int, err error) error {
	return fmt.Errorf("Vector3.%s(%d): %w", method, index, err)
}
