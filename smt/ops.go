package smt

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func mismatch(op string, expected, computed common.Hash) error {
	return fmt.Errorf("%s: %w: expected %s, computed %s", op, ErrRootMismatch, expected.Hex(), computed.Hex())
}

// Verify checks that siblings is a proof for entry under root.
//
// With a nil matching entry it is a membership proof: the leaf of entry is folded along its
// own path. Otherwise it is a non-membership proof: the leaf of matching is folded along the
// path of entry, which only reproduces root when matching sits on the branch entry's key
// would occupy.
//
// The caller must guarantee matching.Key != entry.Key, passing entry itself as matching
// entry turns a membership proof into an accepted non-membership proof.
func (c *Calculator) Verify(entry Entry, matching *Entry, siblings Siblings, root common.Hash) error {
	path := KeyToPath(entry.Key)
	leaf := entry
	op := "verify membership"
	if matching != nil {
		leaf = *matching
		op = "verify non-membership"
	}
	computed, err := c.CalculateRoot(leaf, siblings, path)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if computed != root {
		return mismatch(op, root, computed)
	}
	return nil
}

// Add returns the root of the tree after inserting entry into the tree at oldRoot.
//
// siblings must be the sibling path entry will have once inserted, for a key that is not
// in the tree yet. That absence is not checked: a membership path of an entry already in
// the tree produces a wrong root without error.
func (c *Calculator) Add(entry Entry, oldRoot common.Hash, siblings Siblings) (common.Hash, error) {
	if oldRoot == EmptyRoot {
		return c.LeafHash(entry)
	}
	without, with, err := c.CalculateTwoRoots(entry, siblings)
	if err != nil {
		return common.Hash{}, fmt.Errorf("add: %w", err)
	}
	if without != oldRoot {
		return common.Hash{}, mismatch("add", oldRoot, without)
	}
	return with, nil
}

// Delete returns the root of the tree after removing entry from the tree at oldRoot.
// siblings is the membership path of entry.
func (c *Calculator) Delete(entry Entry, oldRoot common.Hash, siblings Siblings) (common.Hash, error) {
	without, with, err := c.CalculateTwoRoots(entry, siblings)
	if err != nil {
		return common.Hash{}, fmt.Errorf("delete: %w", err)
	}
	if with != oldRoot {
		return common.Hash{}, mismatch("delete", oldRoot, with)
	}
	return without, nil
}

// Update returns the root after replacing the value of oldEntry with newValue. The old and
// the new leaf are folded in the same pass over the shared path.
func (c *Calculator) Update(
	newValue common.Hash, oldEntry Entry, oldRoot common.Hash, siblings Siblings,
) (common.Hash, error) {
	path := KeyToPath(oldEntry.Key)
	oldNode, err := c.LeafHash(oldEntry)
	if err != nil {
		return common.Hash{}, fmt.Errorf("update: %w", err)
	}
	newNode, err := c.LeafHash(Entry{Key: oldEntry.Key, Value: newValue})
	if err != nil {
		return common.Hash{}, fmt.Errorf("update: %w", err)
	}
	for i := 0; i < Depth; i++ {
		if siblings[i] == (common.Hash{}) {
			continue
		}
		if oldNode, err = c.fold(oldNode, siblings[i], path[i]); err != nil {
			return common.Hash{}, fmt.Errorf("update: level %d: %w", i, err)
		}
		if newNode, err = c.fold(newNode, siblings[i], path[i]); err != nil {
			return common.Hash{}, fmt.Errorf("update: level %d: %w", i, err)
		}
	}
	if oldNode != oldRoot {
		return common.Hash{}, mismatch("update", oldRoot, oldNode)
	}
	return newNode, nil
}

// Verify is Calculator.Verify with the poseidon hasher
func Verify(entry Entry, matching *Entry, siblings Siblings, root common.Hash) error {
	return defaultCalculator.Verify(entry, matching, siblings, root)
}

// Add is Calculator.Add with the poseidon hasher
func Add(entry Entry, oldRoot common.Hash, siblings Siblings) (common.Hash, error) {
	return defaultCalculator.Add(entry, oldRoot, siblings)
}

// Delete is Calculator.Delete with the poseidon hasher
func Delete(entry Entry, oldRoot common.Hash, siblings Siblings) (common.Hash, error) {
	return defaultCalculator.Delete(entry, oldRoot, siblings)
}

// Update is Calculator.Update with the poseidon hasher
func Update(newValue common.Hash, oldEntry Entry, oldRoot common.Hash, siblings Siblings) (common.Hash, error) {
	return defaultCalculator.Update(newValue, oldEntry, oldRoot, siblings)
}
