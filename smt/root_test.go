package smt

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/constants"
	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

// keccakHasher makes every hash easy to recompute by hand in tests
type keccakHasher struct{}

func (keccakHasher) HashLeaf(key, value common.Hash) (common.Hash, error) {
	return keccak([]byte{1}, key[:], value[:]), nil
}

func (keccakHasher) HashNode(left, right common.Hash) (common.Hash, error) {
	return keccak(left[:], right[:]), nil
}

func keccak(data ...[]byte) common.Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}
	var h common.Hash
	copy(h[:], hasher.Sum(nil))
	return h
}

func node(l, r common.Hash) common.Hash {
	h, _ := keccakHasher{}.HashNode(l, r)
	return h
}

func leaf(e Entry) common.Hash {
	h, _ := keccakHasher{}.HashLeaf(e.Key, e.Value)
	return h
}

func TestKeyToPath(t *testing.T) {
	var key common.Hash
	key[0] = 0x80
	key[31] = 0x03
	path := KeyToPath(key)
	require.Equal(t, uint8(1), path[0])
	require.Equal(t, uint8(0), path[1])
	require.Equal(t, uint8(0), path[253])
	require.Equal(t, uint8(1), path[254])
	require.Equal(t, uint8(1), path[255])

	require.Equal(t, Path{}, KeyToPath(common.Hash{}))

	key = common.BigToHash(big.NewInt(1 << 8))
	path = KeyToPath(key)
	for i := 0; i < Depth; i++ {
		if i == 247 {
			require.Equal(t, uint8(1), path[i])
			continue
		}
		require.Equal(t, uint8(0), path[i], "bit %d", i)
	}
}

func TestPoseidonHasher(t *testing.T) {
	key := common.BigToHash(big.NewInt(7))
	value := common.BigToHash(big.NewInt(11))

	leafHash, err := PoseidonHasher{}.HashLeaf(key, value)
	require.NoError(t, err)
	expected, err := poseidon.Hash([]*big.Int{big.NewInt(7), big.NewInt(11), big.NewInt(1)})
	require.NoError(t, err)
	require.Equal(t, common.BigToHash(expected), leafHash)

	nodeHash, err := PoseidonHasher{}.HashNode(key, value)
	require.NoError(t, err)
	expected, err = poseidon.Hash([]*big.Int{big.NewInt(7), big.NewInt(11)})
	require.NoError(t, err)
	require.Equal(t, common.BigToHash(expected), nodeHash)
	require.NotEqual(t, leafHash, nodeHash)

	swapped, err := PoseidonHasher{}.HashNode(value, key)
	require.NoError(t, err)
	require.NotEqual(t, nodeHash, swapped)
}

func TestPoseidonHasherRejectsNonField(t *testing.T) {
	q := common.BigToHash(constants.Q)
	_, err := PoseidonHasher{}.HashLeaf(q, common.Hash{})
	require.ErrorIs(t, err, ErrNotInField)
	_, err = PoseidonHasher{}.HashNode(common.Hash{}, q)
	require.ErrorIs(t, err, ErrNotInField)

	_, err = LeafHash(Entry{Key: q})
	require.ErrorIs(t, err, ErrNotInField)
}

func TestCalculateRoot(t *testing.T) {
	c := NewCalculator(keccakHasher{})
	s1 := common.HexToHash("0x01")
	s2 := common.HexToHash("0x02")
	left := Entry{Key: common.Hash{}, Value: common.HexToHash("0xaa")}
	var rightKey common.Hash
	rightKey[0] = 0x80  // consumed at level 0
	rightKey[31] = 0x01 // consumed at level 255
	right := Entry{Key: rightKey, Value: common.HexToHash("0xbb")}

	t.Run("all zero siblings is the leaf", func(t *testing.T) {
		root, err := c.CalculateRoot(left, Siblings{}, KeyToPath(left.Key))
		require.NoError(t, err)
		require.Equal(t, leaf(left), root)
	})

	t.Run("zero path bit keeps the node on the left", func(t *testing.T) {
		var siblings Siblings
		siblings[0] = s1
		siblings[255] = s2
		root, err := c.CalculateRoot(left, siblings, KeyToPath(left.Key))
		require.NoError(t, err)
		require.Equal(t, node(node(leaf(left), s1), s2), root)
	})

	t.Run("level 0 uses the most significant bit", func(t *testing.T) {
		var siblings Siblings
		siblings[0] = s1
		root, err := c.CalculateRoot(right, siblings, KeyToPath(right.Key))
		require.NoError(t, err)
		require.Equal(t, node(s1, leaf(right)), root)
	})

	t.Run("level 255 uses the least significant bit", func(t *testing.T) {
		var siblings Siblings
		siblings[255] = s2
		root, err := c.CalculateRoot(right, siblings, KeyToPath(right.Key))
		require.NoError(t, err)
		require.Equal(t, node(s2, leaf(right)), root)
	})

	t.Run("zero levels in between are skipped", func(t *testing.T) {
		var siblings Siblings
		siblings[3] = s1
		siblings[200] = s2
		root, err := c.CalculateRoot(left, siblings, KeyToPath(left.Key))
		require.NoError(t, err)
		require.Equal(t, node(node(leaf(left), s1), s2), root)
	})
}

func TestCalculateTwoRoots(t *testing.T) {
	c := NewCalculator(keccakHasher{})
	var key common.Hash
	key[1] = 0x40 // level 9
	e := Entry{Key: key, Value: common.HexToHash("0x05")}
	s3 := common.HexToHash("0x33")
	s9 := common.HexToHash("0x99")
	s250 := common.HexToHash("0xfa")

	t.Run("single entry tree", func(t *testing.T) {
		without, with, err := c.CalculateTwoRoots(e, Siblings{})
		require.NoError(t, err)
		require.Equal(t, common.Hash{}, without)
		require.Equal(t, leaf(e), with)
	})

	t.Run("first sibling becomes the remaining subtree", func(t *testing.T) {
		var siblings Siblings
		siblings[3] = s3
		siblings[9] = s9
		siblings[250] = s250
		without, with, err := c.CalculateTwoRoots(e, siblings)
		require.NoError(t, err)
		require.Equal(t, node(node(s9, node(leaf(e), s3)), s250), with)
		require.Equal(t, node(node(s9, s3), s250), without)

		root, err := c.CalculateRoot(e, siblings, KeyToPath(e.Key))
		require.NoError(t, err)
		require.Equal(t, root, with)
	})

	t.Run("only one sibling", func(t *testing.T) {
		var siblings Siblings
		siblings[9] = s9
		without, with, err := c.CalculateTwoRoots(e, siblings)
		require.NoError(t, err)
		require.Equal(t, s9, without)
		require.Equal(t, node(s9, leaf(e)), with)
	})

	t.Run("hash failure is reported", func(t *testing.T) {
		_, _, err := NewCalculator(PoseidonHasher{}).CalculateTwoRoots(Entry{Key: common.BigToHash(constants.Q)}, Siblings{})
		require.True(t, errors.Is(err, ErrNotInField))
	})
}

func TestSiblingsHelpers(t *testing.T) {
	var siblings Siblings
	require.Equal(t, 0, siblings.NonZero())
	require.Equal(t, -1, siblings.Lowest())
	siblings[254] = common.HexToHash("0x01")
	siblings[255] = common.HexToHash("0x02")
	require.Equal(t, 2, siblings.NonZero())
	require.Equal(t, 254, siblings.Lowest())
}
