package smt

import "github.com/ethereum/go-ethereum/common"

// KeyToPath returns the big-endian bit decomposition of key: the most significant bit is
// at index 0. Path index i is consumed together with sibling index i, so the level right
// above the leaf branches on the most significant bit and the level closest to the root
// on the least significant one. Interoperating implementations rely on this pairing.
func KeyToPath(key common.Hash) Path {
	var path Path
	for i := 0; i < Depth; i++ {
		path[i] = (key[i/8] >> (7 - uint(i%8))) & 1 //nolint:mnd
	}
	return path
}
