package smt

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Calculator recomputes tree roots from an entry and its sibling path. It holds no tree
// state and is safe for concurrent use.
type Calculator struct {
	hasher Hasher
}

// NewCalculator returns a calculator hashing with h
func NewCalculator(h Hasher) *Calculator {
	return &Calculator{hasher: h}
}

var defaultCalculator = NewCalculator(PoseidonHasher{})

// Default returns the poseidon backed calculator used by the package level functions
func Default() *Calculator {
	return defaultCalculator
}

// LeafHash returns the hash of the leaf holding e
func (c *Calculator) LeafHash(e Entry) (common.Hash, error) {
	return hash(c.hasher, e.Key, e.Value, true)
}

// fold hashes node with its sibling, bit tells on which side node sits
func (c *Calculator) fold(node, sibling common.Hash, bit uint8) (common.Hash, error) {
	if bit == 0 {
		return hash(c.hasher, node, sibling, false)
	}
	return hash(c.hasher, sibling, node, false)
}

// CalculateRoot folds the leaf of e with every non-zero sibling, choosing the side of each
// pair with path. Zero siblings are levels without branching and are skipped, so a path
// made only of zeros yields the bare leaf hash.
func (c *Calculator) CalculateRoot(e Entry, siblings Siblings, path Path) (common.Hash, error) {
	node, err := c.LeafHash(e)
	if err != nil {
		return common.Hash{}, err
	}
	for i := 0; i < Depth; i++ {
		if siblings[i] == (common.Hash{}) {
			continue
		}
		node, err = c.fold(node, siblings[i], path[i])
		if err != nil {
			return common.Hash{}, fmt.Errorf("level %d: %w", i, err)
		}
	}
	return node, nil
}

// CalculateTwoRoots walks the sibling path of e once and returns both the root of the tree
// without e and the root of the tree with e.
//
// Removing the leaf of e collapses the first branching level: the first non-zero sibling
// becomes the root of the remaining subtree and starts being folded from the next level up.
func (c *Calculator) CalculateTwoRoots(e Entry, siblings Siblings) (without, with common.Hash, err error) {
	path := KeyToPath(e.Key)
	with, err = c.LeafHash(e)
	if err != nil {
		return common.Hash{}, common.Hash{}, err
	}
	for i := 0; i < Depth; i++ {
		sibling := siblings[i]
		if sibling == (common.Hash{}) {
			continue
		}
		if without == (common.Hash{}) {
			without = sibling
		}
		with, err = c.fold(with, sibling, path[i])
		if err != nil {
			return common.Hash{}, common.Hash{}, fmt.Errorf("level %d: %w", i, err)
		}
		if without != sibling {
			without, err = c.fold(without, sibling, path[i])
			if err != nil {
				return common.Hash{}, common.Hash{}, fmt.Errorf("level %d: %w", i, err)
			}
		}
	}
	return without, with, nil
}

// LeafHash returns the poseidon hash of the leaf holding e
func LeafHash(e Entry) (common.Hash, error) {
	return defaultCalculator.LeafHash(e)
}

// CalculateRoot is Calculator.CalculateRoot with the poseidon hasher
func CalculateRoot(e Entry, siblings Siblings, path Path) (common.Hash, error) {
	return defaultCalculator.CalculateRoot(e, siblings, path)
}

// CalculateTwoRoots is Calculator.CalculateTwoRoots with the poseidon hasher
func CalculateTwoRoots(e Entry, siblings Siblings) (without, with common.Hash, err error) {
	return defaultCalculator.CalculateTwoRoots(e, siblings)
}
