// SPDX-License-Identifier: MIT
package simplex

import (
	"testing"

	"github.com/katalvlaran/steenroder/column"
	"github.com/katalvlaran/steenroder/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle: 3 vertices (0,1,2), 3 edges (3=ab,4=bc,5=ac), 1 triangle
// (6=abc).
func buildTriangle() (*matrix.Matrix, *matrix.View) {
	m := matrix.New(7)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn(nil), 0)
	m.Append(column.NewSortedColumn([]int{0, 1}), 1)
	m.Append(column.NewSortedColumn([]int{1, 2}), 1)
	m.Append(column.NewSortedColumn([]int{0, 2}), 1)
	m.Append(column.NewSortedColumn([]int{3, 4, 5}), 2)

	return m, matrix.NewView([]int8{0, 0, 0, 1, 1, 1, 2})
}

func TestBuild_EdgeSupportIsItsOwnBoundary(t *testing.T) {
	m, view := buildTriangle()
	sup, err := Build(m, view, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, sup.Get(3).Elements())
	assert.Equal(t, []int{1, 2}, sup.Get(4).Elements())
	assert.Equal(t, []int{0, 2}, sup.Get(5).Elements())
}

func TestBuild_TriangleSupportIsAllThreeVertices(t *testing.T) {
	m, view := buildTriangle()
	sup, err := Build(m, view, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, sup.Get(6).Elements())
}

func TestIndexOf_FindsMatchingSupport(t *testing.T) {
	m, view := buildTriangle()
	sup, err := Build(m, view, 1, 2)
	require.NoError(t, err)

	candidate := column.NewSortedColumn([]int{0, 1, 2})
	assert.Equal(t, 6, sup.IndexOf(0, 2, candidate))
	assert.Equal(t, -1, sup.IndexOf(7, 2, candidate))

	missing := column.NewSortedColumn([]int{0, 1})
	assert.Equal(t, -1, sup.IndexOf(0, 2, missing))
}
