// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrBadStep is returned when a step sets zero or several of
	// translate/rotate/euler/isometry.
	ErrBadStep = errors.New("chain: step must set exactly one transform")

	// ErrBadVector is returned for vectors without exactly 3 components and
	// matrices that are not 3×3.
	ErrBadVector = errors.New("chain: expected 3 components")

	// ErrZeroAxis is returned for a rotate step whose axis length is zero,
	// NaN or infinite.
	ErrZeroAxis = errors.New("chain: rotation axis has no usable length")

	// ErrExtraDocument is returned when a YAML stream holds more than one document.
	ErrExtraDocument = errors.New("chain: more than one yaml document")

	// ErrBadUnits is returned for an angle unit other than radians or degrees.
	ErrBadUnits = errors.New("chain: unknown angle units")
)

// stepErrorf wraps err with the index of the offending step.
func stepErrorf(index int, err error) error {
	return fmt.Errorf("step %d: %w", index, err)
}
