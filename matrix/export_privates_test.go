// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private validators.
//
// Purpose:
//   - Expose unexported index guards to matrix_test only.
//   - Lives in a _test.go file, so it never reaches production builds.

// ValidateIndex_TestOnly forwards to validateIndex.
func ValidateIndex_TestOnly(i int) error { return validateIndex(i) }

// ValidateCell_TestOnly forwards to validateCell.
func ValidateCell_TestOnly(i, j int) error { return validateCell(i, j) }
