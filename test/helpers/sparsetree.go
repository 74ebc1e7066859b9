package helpers

import (
	"context"
	"crypto/rand"
	"fmt"
	"sort"

	"github.com/0xPolygon/zk-smt/smt"
	"github.com/ethereum/go-ethereum/common"
)

// SparseTree is an in memory reference tree used to produce witnesses in tests. It
// recomputes every subtree on demand and is only meant for small entry sets.
//
// Layout: the root level branches on the last bit of the key and every level below on the
// previous bit. A node with a single non-empty child is replaced by that child, so a leaf
// lives at the highest level where it is alone in its subtree.
type SparseTree struct {
	hasher  smt.Hasher
	entries map[common.Hash]common.Hash
}

var _ smt.WitnessSource = (*SparseTree)(nil)

// NewSparseTree returns an empty tree hashing with h
func NewSparseTree(h smt.Hasher) *SparseTree {
	return &SparseTree{
		hasher:  h,
		entries: map[common.Hash]common.Hash{},
	}
}

// Set inserts or overwrites an entry
func (t *SparseTree) Set(e smt.Entry) {
	t.entries[e.Key] = e.Value
}

// Remove deletes the entry stored at key, if any
func (t *SparseTree) Remove(key common.Hash) {
	delete(t.entries, key)
}

// Get returns the entry stored at key
func (t *SparseTree) Get(key common.Hash) (smt.Entry, bool) {
	v, ok := t.entries[key]
	return smt.Entry{Key: key, Value: v}, ok
}

// Len returns the number of entries
func (t *SparseTree) Len() int {
	return len(t.entries)
}

// Root returns the root of the tree, smt.EmptyRoot when it has no entries
func (t *SparseTree) Root() (common.Hash, error) {
	return t.subtree(t.keys(), smt.Depth-1)
}

// Witness returns the sibling path of key together with the matching entry when key is not
// in the tree. The matching entry is nil for members and when the branch of key is empty.
func (t *SparseTree) Witness(key common.Hash) (smt.Siblings, *smt.Entry, error) {
	var siblings smt.Siblings
	keys := t.keys()
	for level := smt.Depth - 1; level >= 0 && len(keys) > 1; level-- {
		own, other := partition(keys, key, level)
		sibling, err := t.subtree(other, level-1)
		if err != nil {
			return smt.Siblings{}, nil, err
		}
		siblings[level] = sibling
		keys = own
	}
	if len(keys) == 1 && keys[0] != key {
		matching := smt.Entry{Key: keys[0], Value: t.entries[keys[0]]}
		return siblings, &matching, nil
	}
	return siblings, nil, nil
}

// SiblingsFor implements smt.WitnessSource
func (t *SparseTree) SiblingsFor(_ context.Context, key common.Hash) (smt.Siblings, error) {
	siblings, _, err := t.Witness(key)
	return siblings, err
}

// MatchingEntryFor implements smt.WitnessSource
func (t *SparseTree) MatchingEntryFor(_ context.Context, key common.Hash) (*smt.Entry, error) {
	_, matching, err := t.Witness(key)
	return matching, err
}

func (t *SparseTree) subtree(keys []common.Hash, level int) (common.Hash, error) {
	switch len(keys) {
	case 0:
		return common.Hash{}, nil
	case 1:
		return t.hasher.HashLeaf(keys[0], t.entries[keys[0]])
	}
	if level < 0 {
		return common.Hash{}, fmt.Errorf("%d keys share the whole path", len(keys))
	}
	var left, right []common.Hash
	for _, k := range keys {
		if bitAt(k, level) == 0 {
			left = append(left, k)
		} else {
			right = append(right, k)
		}
	}
	l, err := t.subtree(left, level-1)
	if err != nil {
		return common.Hash{}, err
	}
	r, err := t.subtree(right, level-1)
	if err != nil {
		return common.Hash{}, err
	}
	if l == (common.Hash{}) {
		return r, nil
	}
	if r == (common.Hash{}) {
		return l, nil
	}
	return t.hasher.HashNode(l, r)
}

func (t *SparseTree) keys() []common.Hash {
	keys := make([]common.Hash, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Cmp(keys[j]) < 0 })
	return keys
}

func partition(keys []common.Hash, key common.Hash, level int) (own, other []common.Hash) {
	bit := bitAt(key, level)
	for _, k := range keys {
		if bitAt(k, level) == bit {
			own = append(own, k)
		} else {
			other = append(other, k)
		}
	}
	return own, other
}

func bitAt(key common.Hash, level int) uint8 {
	return (key[level/8] >> (7 - uint(level%8))) & 1 //nolint:mnd
}

// FlipBit returns key with the bit consumed at level inverted
func FlipBit(key common.Hash, level int) common.Hash {
	key[level/8] ^= 1 << (7 - uint(level%8))
	return key
}

// RandomField returns a random element below 2^253, which is always inside the BN254
// scalar field
func RandomField() common.Hash {
	var h common.Hash
	if _, err := rand.Read(h[:]); err != nil {
		panic(err)
	}
	h[0] &= 0x1f
	return h
}

// RandomEntry returns an entry with random key and value
func RandomEntry() smt.Entry {
	return smt.Entry{Key: RandomField(), Value: RandomField()}
}
