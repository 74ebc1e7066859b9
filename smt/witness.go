package smt

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// WitnessSource is implemented by whatever owns the tree and can produce witnesses for it.
// This package never stores a tree, it only consumes what a WitnessSource returns.
type WitnessSource interface {
	// SiblingsFor returns the sibling path of key. For a key that is not in the tree it is
	// the path leading to the matching entry.
	SiblingsFor(ctx context.Context, key common.Hash) (Siblings, error)
	// MatchingEntryFor returns the entry sharing the path prefix of an absent key, nil when
	// key is in the tree or the tree is empty.
	MatchingEntryFor(ctx context.Context, key common.Hash) (*Entry, error)
}

func siblingsFrom(ctx context.Context, src WitnessSource, key common.Hash) (Siblings, error) {
	siblings, err := src.SiblingsFor(ctx, key)
	if err != nil {
		return Siblings{}, fmt.Errorf("siblings for %s: %w: %w", key.Hex(), ErrWitnessSource, err)
	}
	return siblings, nil
}

// VerifyMembership fetches the sibling path of entry from src and verifies it against root
func (c *Calculator) VerifyMembership(ctx context.Context, src WitnessSource, entry Entry, root common.Hash) error {
	siblings, err := siblingsFrom(ctx, src, entry.Key)
	if err != nil {
		return err
	}
	return c.Verify(entry, nil, siblings, root)
}

// VerifyNonMembership proves that key is absent from the tree at root with the matching
// entry and siblings returned by src. Only the key of the queried entry takes part in the
// proof.
func (c *Calculator) VerifyNonMembership(ctx context.Context, src WitnessSource, key, root common.Hash) error {
	matching, err := src.MatchingEntryFor(ctx, key)
	if err != nil {
		return fmt.Errorf("matching entry for %s: %w: %w", key.Hex(), ErrWitnessSource, err)
	}
	if matching == nil {
		return fmt.Errorf("key %s: %w", key.Hex(), ErrNoMatchingEntry)
	}
	siblings, err := siblingsFrom(ctx, src, key)
	if err != nil {
		return err
	}
	return c.Verify(Entry{Key: key}, matching, siblings, root)
}

// AddFrom inserts entry using the sibling path src reports for it. src must already answer
// for the tree that contains entry, see Add.
func (c *Calculator) AddFrom(ctx context.Context, src WitnessSource, entry Entry, oldRoot common.Hash) (common.Hash, error) {
	siblings, err := siblingsFrom(ctx, src, entry.Key)
	if err != nil {
		return common.Hash{}, err
	}
	return c.Add(entry, oldRoot, siblings)
}

// DeleteFrom removes entry using the membership path src reports for it
func (c *Calculator) DeleteFrom(ctx context.Context, src WitnessSource, entry Entry, oldRoot common.Hash) (common.Hash, error) {
	siblings, err := siblingsFrom(ctx, src, entry.Key)
	if err != nil {
		return common.Hash{}, err
	}
	return c.Delete(entry, oldRoot, siblings)
}

// UpdateFrom sets the value of oldEntry to newValue using the membership path src reports
func (c *Calculator) UpdateFrom(
	ctx context.Context, src WitnessSource, newValue common.Hash, oldEntry Entry, oldRoot common.Hash,
) (common.Hash, error) {
	siblings, err := siblingsFrom(ctx, src, oldEntry.Key)
	if err != nil {
		return common.Hash{}, err
	}
	return c.Update(newValue, oldEntry, oldRoot, siblings)
}
