// SPDX-License-Identifier: MIT
package reduce

// Options configures Twist's optional behavior. Built via functional
// options, the teacher's standard pattern for tunable algorithm entry
// points (see dijkstra.Option).
type Options struct {
	parallelDimensions bool
}

// Option customizes an Options value.
type Option func(*Options)

// WithParallelDimensions has Twist warm each dimension band's column
// pivots concurrently (a read-only pass with no shared mutable state)
// before the sequential fold/twist pass that actually reduces and clears
// columns. The fold pass itself always stays sequential within a band,
// since a later column may depend on a pivot claimed earlier in the same
// band — only the independent pivot lookups are parallelized.
func WithParallelDimensions() Option {
	return func(o *Options) { o.parallelDimensions = true }
}

func defaultOptions() Options { return Options{} }
