package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDishKey_CanonicalHex(t *testing.T) {
	id := "0x" + strings.Repeat("ab", 32)

	key := DishKey(id)

	assert.Equal(t, id, KeyHex(key))
}

func TestDishKey_CanonicalHexIsCaseInsensitive(t *testing.T) {
	upper := "0x" + strings.Repeat("AB", 32)
	lower := "0x" + strings.Repeat("ab", 32)

	assert.Equal(t, DishKey(lower), DishKey(upper))
	assert.Equal(t, lower, KeyHex(DishKey(upper)))
}

func TestDishKey_ShortStringIsZeroPadded(t *testing.T) {
	key := DishKey("margherita")

	assert.Equal(t, []byte("margherita"), key[:10])
	for i := 10; i < KeySize; i++ {
		assert.Zero(t, key[i])
	}
}

func TestDishKey_LongStringIsTruncated(t *testing.T) {
	long := strings.Repeat("x", 50)

	key := DishKey(long)

	assert.Equal(t, []byte(long[:KeySize]), key[:])
}

func TestDishKey_HexWithoutPrefixIsTreatedAsPlainString(t *testing.T) {
	id := strings.Repeat("ab", 32)

	key := DishKey(id)

	// No 0x prefix means no hex decoding; the first 32 characters are taken
	// as raw bytes.
	assert.Equal(t, []byte(id[:KeySize]), key[:])
}

func TestIsCanonicalKey(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"0x" + strings.Repeat("ab", 32), true},
		{"0x" + strings.Repeat("AB", 32), true},
		{"0x" + strings.Repeat("ab", 31), false},
		{"0x" + strings.Repeat("ab", 33), false},
		{"0x" + strings.Repeat("zz", 32), false},
		{strings.Repeat("ab", 32), false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCanonicalKey(tt.id), tt.id)
	}
}
