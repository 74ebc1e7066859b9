package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/constants"
)

// FieldModulus returns the order of the BN254 scalar field, every key, value and node hash
// of the tree is an element of it
func FieldModulus() *big.Int {
	return new(big.Int).Set(constants.Q)
}

// IsInField reports whether v is a canonical element of the BN254 scalar field
func IsInField(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(constants.Q) < 0
}

// BigToField converts a non negative integer into its 32 bytes big-endian form
func BigToField(v *big.Int) common.Hash {
	return common.BigToHash(v)
}

// FieldToBig converts a 32 bytes big-endian field element into an integer
func FieldToBig(h common.Hash) *big.Int {
	return new(big.Int).SetBytes(h[:])
}

// ParseField parses a decimal or 0x prefixed hexadecimal field element
func ParseField(s string) (common.Hash, bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || !IsInField(v) {
		return common.Hash{}, false
	}
	return BigToField(v), true
}
