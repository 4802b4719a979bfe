// Package ioformat reads and writes the ASCII and binary boundary-matrix
// and barcode formats described in spec.md §6, grounded in
// sorted_matrix.hpp's load_ascii/load_ascii_dual/load_binary/save_ascii/
// save_binary and sorted_bars.hpp's save routines. Unlike the original,
// every loader here takes an io.Reader/io.Writer rather than a filename,
// leaving file handling to cmd/steenroder.
package ioformat
