// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations MUST return these sentinels (possibly wrapped with %w) and
// tests MUST check them via errors.Is. No method panics on user input.

package matrix

import (
	"errors"

	"github.com/katalvlaran/isometry/vector"
)

var (
	// ErrOutOfRange indicates that a row, column or element index is outside [0,2].
	// It is the same sentinel as vector.ErrOutOfRange so that a single
	// errors.Is check covers every indexer in the module.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSingular is returned by Inverse when |det| < SingularityThreshold.
	ErrSingular = errors.New("matrix: singular matrix")
)
