// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for index guards used by Row/SetRow/Col/At/Set.
//   - Return plain sentinels; call sites wrap with method context.

package matrix

import "fmt"

// validateIndex ensures 0 <= i < Size.
func validateIndex(i int) error {
	if i < 0 || i >= Size {
		return ErrOutOfRange
	}

	return nil
}

// validateCell ensures both coordinates are in range.
func validateCell(i, j int) error {
	if err := validateIndex(i); err != nil {
		return err
	}

	return validateIndex(j)
}

// Method tags used in error wrappers.
const (
	ctxRow    = "Row"
	ctxSetRow = "SetRow"
	ctxCol    = "Col"
	ctxAt     = "At"
	ctxSet    = "Set"
)

// indexErrorf wraps err with the method tag and a single index.
func indexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Matrix3.%s(%d): %w", method, i, err)
}

// cellErrorf wraps err with the method tag and (row,col) coordinates.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix3.%s(%d,%d): %w", method, i, j, err)
}
