package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInField(t *testing.T) {
	t.Parallel()

	q := FieldModulus()
	tests := []struct {
		name     string
		input    *big.Int
		expected bool
	}{
		{name: "Zero value", input: big.NewInt(0), expected: true},
		{name: "Positive value", input: big.NewInt(123456789), expected: true},
		{name: "Negative value", input: big.NewInt(-1), expected: false},
		{name: "Modulus minus one", input: new(big.Int).Sub(q, big.NewInt(1)), expected: true},
		{name: "Modulus", input: q, expected: false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, IsInField(tt.input))
		})
	}
}

func TestFieldConversions(t *testing.T) {
	v, ok := new(big.Int).SetString("18746990989203767017840856832962652635369613415011636432610873672704085238844", 10)
	require.True(t, ok)
	h := BigToField(v)
	require.Equal(t, v, FieldToBig(h))

	parsed, ok := ParseField(v.String())
	require.True(t, ok)
	require.Equal(t, h, parsed)

	parsed, ok = ParseField(h.Hex())
	require.True(t, ok)
	require.Equal(t, h, parsed)

	_, ok = ParseField(FieldModulus().String())
	require.False(t, ok)
	_, ok = ParseField("not a number")
	require.False(t, ok)
}

func TestFieldModulusIsACopy(t *testing.T) {
	q := FieldModulus()
	q.SetInt64(0)
	require.NotEqual(t, q, FieldModulus())
}
