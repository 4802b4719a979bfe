// SPDX-License-Identifier: MIT
package ioformat

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
)

// rawLine is one parsed non-comment, non-blank input line: a dimension
// plus its (not yet necessarily sorted) row indices.
type rawLine struct {
	dim  int8
	rows []int
}

// scanLines reads every non-empty, non-'#'-prefixed line of r, parsing the
// leading whitespace-separated dimension field and the remaining row
// indices of each.
func scanLines(r io.Reader) ([]rawLine, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var lines []rawLine
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		dim, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("ioformat: parse dimension %q: %w", fields[0], ErrMalformedLine)
		}
		if dim < 0 {
			return nil, fmt.Errorf("ioformat: dimension %d: %w", dim, ErrNegativeIndex)
		}

		rows := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			row, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("ioformat: parse row %q: %w", f, ErrMalformedLine)
			}
			if row < 0 {
				return nil, fmt.Errorf("ioformat: row %d: %w", row, ErrNegativeIndex)
			}
			rows = append(rows, row)
		}
		lines = append(lines, rawLine{dim: int8(dim), rows: rows})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	return lines, nil
}

// ReadMatrixASCII parses the per-line "dim row...row" boundary-matrix
// format of spec.md §6: line i becomes cell i's column, with row entries
// sorted and de-duplicated on load (inputs are not required to arrive
// pre-sorted).
func ReadMatrixASCII(r io.Reader) (*matrix.Matrix, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	n := len(lines)
	m := matrix.New(n)
	for c, ln := range lines {
		for _, row := range ln.rows {
			if row >= n {
				return nil, fmt.Errorf("ioformat: cell %d row %d: %w", c, row, ErrRowOutOfRange)
			}
		}
		m.Append(column.NewSortedColumnFromUnsorted(ln.rows), ln.dim)
	}

	return m, nil
}

// ReadMatrixASCIIDual parses the same per-line format but interprets it as
// already anti-transposed: row r of raw column c becomes row N-1-c of
// column N-1-r (sorted_matrix.hpp's load_ascii_dual), letting a
// pre-dualized file be loaded directly without a separate dualize.Dualize
// pass. Dimensions flip the same way dualize.Dualize flips them:
// column N-1-c gets dimension (D-1)-dim(c), D being one more than the
// maximum raw dimension in the file.
func ReadMatrixASCIIDual(r io.Reader) (*matrix.Matrix, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, err
	}

	n := len(lines)
	var maxDim int8
	for _, ln := range lines {
		if ln.dim > maxDim {
			maxDim = ln.dim
		}
	}

	dualRows := make([][]int, n)
	dualDims := make([]int8, n)
	for rawCol, ln := range lines {
		dualDims[n-1-rawCol] = maxDim - ln.dim
		for _, rawRow := range ln.rows {
			if rawRow >= n {
				return nil, fmt.Errorf("ioformat: cell %d row %d: %w", rawCol, rawRow, ErrRowOutOfRange)
			}
			dualRows[n-1-rawRow] = append(dualRows[n-1-rawRow], n-1-rawCol)
		}
	}

	m := matrix.New(n)
	for c := 0; c < n; c++ {
		sort.Ints(dualRows[c])
		m.Append(column.NewSortedColumn(dualRows[c]), dualDims[c])
	}

	return m, nil
}

// ReadMatrixBinary parses the little-endian int64 binary boundary-matrix
// format of spec.md §6:
// [N][dim_0][n_0][rows_0...][dim_1][n_1][rows_1...]....
func ReadMatrixBinary(r io.Reader) (*matrix.Matrix, error) {
	readInt64 := func() (int64, error) {
		var v int64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrTruncated
			}

			return 0, err
		}

		return v, nil
	}

	n, err := readInt64()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeIndex
	}

	m := matrix.New(int(n))
	for c := int64(0); c < n; c++ {
		dim, err := readInt64()
		if err != nil {
			return nil, err
		}
		if dim < 0 {
			return nil, ErrNegativeIndex
		}
		nRows, err := readInt64()
		if err != nil {
			return nil, err
		}
		rows := make([]int, nRows)
		for i := int64(0); i < nRows; i++ {
			row, err := readInt64()
			if err != nil {
				return nil, err
			}
			if row >= n {
				return nil, ErrRowOutOfRange
			}
			rows[i] = int(row)
		}
		sort.Ints(rows)
		m.Append(column.NewSortedColumn(rows), int8(dim))
	}

	return m, nil
}
