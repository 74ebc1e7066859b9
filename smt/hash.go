package smt

import (
	"fmt"
	"math/big"

	zkcommon "github.com/0xPolygon/zk-smt/common"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// Hasher is the hash primitive of the tree. Leaf and internal node hashes must be domain
// separated so that a leaf can never be confused with a node built from the same inputs.
type Hasher interface {
	HashLeaf(key, value common.Hash) (common.Hash, error)
	HashNode(left, right common.Hash) (common.Hash, error)
}

// leafDomain is appended as third input of every leaf hash
var leafDomain = big.NewInt(1)

// PoseidonHasher hashes with the circom compatible poseidon over the BN254 scalar field:
// leaves are poseidon(key, value, 1) and internal nodes poseidon(left, right).
type PoseidonHasher struct{}

func (PoseidonHasher) HashLeaf(key, value common.Hash) (common.Hash, error) {
	return poseidonHash(key, value, leafDomain)
}

func (PoseidonHasher) HashNode(left, right common.Hash) (common.Hash, error) {
	return poseidonHash(left, right, nil)
}

func poseidonHash(a, b common.Hash, domain *big.Int) (common.Hash, error) {
	inputs := make([]*big.Int, 0, 3) //nolint:mnd
	for _, h := range [2]common.Hash{a, b} {
		v := zkcommon.FieldToBig(h)
		if !zkcommon.IsInField(v) {
			return common.Hash{}, fmt.Errorf("%s: %w", h.Hex(), ErrNotInField)
		}
		inputs = append(inputs, v)
	}
	if domain != nil {
		inputs = append(inputs, domain)
	}
	res, err := poseidon.Hash(inputs)
	if err != nil {
		return common.Hash{}, fmt.Errorf("poseidon hash: %w", err)
	}
	return zkcommon.BigToField(res), nil
}

// hash is the single entry point used by the calculators, isLeaf selects the mode
func hash(h Hasher, left, right common.Hash, isLeaf bool) (common.Hash, error) {
	if isLeaf {
		return h.HashLeaf(left, right)
	}
	return h.HashNode(left, right)
}
