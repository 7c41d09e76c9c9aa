// This file implements the canonical Index: an injective mapping from
// domain keys to dense integer positions, rebuilt per invocation.
package canon

import "fmt"

// Index maps domain keys to dense positions 0..Len()-1 and back.
// The mapping is injective and round-trip stable: Key(Pos(k)) == k for
// every key ever added. Build one per invocation; positions are never
// meaningful across two different Index values.
type Index struct {
	pos  map[Key]int
	keys []Key
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{pos: make(map[Key]int)}
}

// Add inserts a new key and returns its position.
// Returns ErrDuplicateKey if the key is already present.
func (ix *Index) Add(k Key) (int, error) {
	if _, ok := ix.pos[k]; ok {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateKey, k)
	}
	p := len(ix.keys)
	ix.pos[k] = p
	ix.keys = append(ix.keys, k)

	return p, nil
}

// Ensure returns the key's position, inserting it first if absent.
func (ix *Index) Ensure(k Key) int {
	if p, ok := ix.pos[k]; ok {
		return p
	}
	p := len(ix.keys)
	ix.pos[k] = p
	ix.keys = append(ix.keys, k)

	return p
}

// Pos returns the position of k and whether it is present.
func (ix *Index) Pos(k Key) (int, bool) {
	p, ok := ix.pos[k]

	return p, ok
}

// Key returns the domain key behind a position.
// Returns ErrBadPosition if pos is outside [0, Len()).
func (ix *Index) Key(pos int) (Key, error) {
	if pos < 0 || pos >= len(ix.keys) {
		return Key{}, fmt.Errorf("%w: %d of %d", ErrBadPosition, pos, len(ix.keys))
	}

	return ix.keys[pos], nil
}

// Len returns the number of keys in the index.
func (ix *Index) Len() int { return len(ix.keys) }

// Keys returns a copy of all keys in position order.
func (ix *Index) Keys() []Key {
	out := make([]Key, len(ix.keys))
	copy(out, ix.keys)

	return out
}
