package smt

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

const (
	// Depth is the number of levels of every tree handled by this package. Every sibling
	// path and every key path has exactly Depth elements.
	Depth = 256
)

var (
	// EmptyRoot is the root of a tree without entries
	EmptyRoot = common.Hash{}

	ErrRootMismatch    = errors.New("root mismatch")
	ErrNotInField      = errors.New("value is not a canonical field element")
	ErrWitnessSource   = errors.New("witness source failure")
	ErrNoMatchingEntry = errors.New("witness source has no matching entry")
)

// Entry is a key/value pair stored on a leaf. Both members are field elements encoded as
// 32 bytes big-endian.
type Entry struct {
	Key   common.Hash
	Value common.Hash
}

// Siblings is the sibling path of a leaf. Index 0 is the neighbour of the leaf and index
// Depth-1 is the node closest to the root. A zero hash means there is no branching at
// that level.
type Siblings [Depth]common.Hash

// Path is the sequence of branch decisions derived from a key, 0 means the node is the
// left child at that level.
type Path [Depth]uint8

// NonZero returns how many levels of the path actually branch
func (s *Siblings) NonZero() int {
	n := 0
	for i := range s {
		if s[i] != (common.Hash{}) {
			n++
		}
	}
	return n
}

// Lowest returns the index of the first non-zero sibling, or -1 when all of them are zero
func (s *Siblings) Lowest() int {
	for i := range s {
		if s[i] != (common.Hash{}) {
			return i
		}
	}
	return -1
}
