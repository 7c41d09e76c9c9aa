// Package canon is the bridge between caller data containers and the
// canonical index space of a mathematical program, in both directions.
//
// # Encoding
//
// The supported container idioms are reified as a closed tagged variant,
// GraphInput, with one constructor per idiom:
//
//	canon.TableGraph(t, schema)   // edge-list relation with named columns
//	canon.DenseGraph(m, labels)   // square dense adjacency (gonum mat.Dense)
//	canon.SparseGraph(m, labels)  // square sparse adjacency (matrix.COO)
//	canon.GraphOf(g)              // core.Graph arc network
//
// Encode maps the container into an EdgeList: an Index of node keys, an
// Index of arc keys, per-arc endpoint positions and Cost/Capacity vectors,
// and per-node Balance. An Index is an injective mapping from domain Key to
// a dense integer position; it is rebuilt on every Encode call and never
// shared or compared across invocations. Positions are assigned in a
// deterministic order per idiom (row order for tables, row-major scan for
// dense, entry order for sparse, sorted vertex IDs and arc insertion order
// for graphs), so encoding the same container twice yields the same index.
//
// The bipartite family (assignment) has its own canonical form, PairList,
// built by EncodeDensePairs or EncodeTablePairs: there the dense idiom is a
// rows×cols cost matrix in which every entry — including zero — is a valid
// pair, unlike adjacency where zero means "no arc".
//
// Documented defaults for absent data fields: Cost 0, Capacity +Inf,
// Balance 0. Nothing else is ever filled in silently.
//
// # Decoding
//
// Decode reverses the trip: given a per-arc keep mask and optional values,
// it rebuilds a Selection in the original idiom — a row subset of the input
// table in original row order, a dense matrix of the original shape, a COO
// holding the kept subset of the original entries in their original order,
// or a graph with every original vertex and the kept arcs. Every output
// position corresponds to exactly the domain key that produced its
// canonical index during encoding.
//
// # Errors (sentinel)
//
//	– ErrSchema       required structural/data column or attribute absent.
//	– ErrShape        container dimensions inconsistent with declared roles.
//	– ErrDuplicateKey two structural entities share a domain key.
//	– ErrEmpty        required structural dimension is empty (or nil input).
//	– ErrBadValue     non-finite coefficient where a finite one is required.
//	– ErrBadPosition  canonical position outside the index.
//
// Matched with errors.Is; each carries the offending key, column or
// dimension in its message.
package canon
