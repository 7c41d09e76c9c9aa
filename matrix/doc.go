// SPDX-License-Identifier: MIT

// Package matrix provides the sparse (coordinate-triplet) container used as
// an input and output idiom of the optimization mods.
//
// A COO holds an r×c matrix as a list of (row, col, value) entries in
// insertion order. It mirrors the triplet form common in scientific code:
// entries absent from the list are structural zeros. Because decoded
// results must reproduce the caller's sparsity pattern exactly, the entry
// order of a COO is meaningful and is preserved by every transformation.
//
// Duplicate coordinates are legal at this layer (the container is just a
// triplet list); the entity encoder rejects them when the coordinates serve
// as structural keys, since two entries at the same position would make the
// canonical index ambiguous.
//
// Values must be finite: NaN and ±Inf are rejected on Append (ErrNaNInf),
// matching the ingestion policy a coefficient container needs.
//
// Errors:
//
//	ErrBadShape   - non-positive dimension requested.
//	ErrOutOfRange - entry coordinates outside the matrix shape.
//	ErrNaNInf     - non-finite value appended.
package matrix
