// SPDX-License-Identifier: MIT
package ioformat

import "errors"

// Sentinel errors for the ioformat package, surfaced per spec.md §7's
// "malformed input" error kind: bad integers, negative indices, row index
// >= N, missing dimension field.
var (
	// ErrEmptyInput indicates a file with no non-comment, non-blank lines.
	ErrEmptyInput = errors.New("ioformat: empty input")

	// ErrMalformedLine indicates a line whose dimension field is missing
	// or not an integer.
	ErrMalformedLine = errors.New("ioformat: malformed line")

	// ErrNegativeIndex indicates a negative dimension or row index.
	ErrNegativeIndex = errors.New("ioformat: negative index")

	// ErrRowOutOfRange indicates a row index >= the declared column count.
	ErrRowOutOfRange = errors.New("ioformat: row index out of range")

	// ErrTruncated indicates a binary stream that ended before its
	// declared column/row counts were satisfied.
	ErrTruncated = errors.New("ioformat: truncated binary stream")
)
