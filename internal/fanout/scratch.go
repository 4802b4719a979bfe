// SPDX-License-Identifier: MIT
package fanout

// cacheLinePad is sized to push each Scratch cell onto its own cache line
// on common 64-byte-line architectures, avoiding false sharing when workers
// write to adjacent slots concurrently. It is a best-effort heuristic, not
// a hard guarantee — Go gives no portable way to pin struct alignment to a
// cache line without unsafe, so cells smaller than a line may still share
// one on exotic hardware.
const cacheLinePad = 64

// cell holds one worker's value plus padding.
type cell[T any] struct {
	Value T
	_     [cacheLinePad]byte
}

// Scratch is one reusable value of type T per worker id, the Go rendering
// of thread_local_storage<T>: instead of goroutine-local storage (which Go
// does not expose), each worker is handed its own slot by id, indexed
// directly rather than looked up.
type Scratch[T any] struct {
	cells []cell[T]
}

// NewScratch allocates a Scratch with one zero-valued slot per worker, for
// n workers as returned by NumWorkers.
func NewScratch[T any](n int) *Scratch[T] {
	return &Scratch[T]{cells: make([]cell[T], n)}
}

// Get returns a pointer to worker id's slot, safe to read/write from that
// worker's goroutine without synchronization as long as no other worker
// touches the same id.
func (s *Scratch[T]) Get(id int) *T { return &s.cells[id].Value }

// Len returns the number of worker slots.
func (s *Scratch[T]) Len() int { return len(s.cells) }
