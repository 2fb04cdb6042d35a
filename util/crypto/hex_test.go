package crypto

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	t.Run("round trip bytes", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			b := make([]byte, 32)
			_, err := rand.Read(b)
			require.NoError(t, err)
			dec, err := DecodeHex(EncodeHex(b))
			require.NoError(t, err)
			assert.Equal(t, b, dec)
		}
	})
	t.Run("round trip string", func(t *testing.T) {
		for _, s := range []string{key1PrivHex, key2PrivHex, key1PubHex, msg1Key1Sig} {
			dec, err := DecodeHex(s)
			require.NoError(t, err)
			assert.Equal(t, s, EncodeHex(dec))
		}
	})
	t.Run("upper case", func(t *testing.T) {
		dec, err := DecodeHex("00FFaB")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xff, 0xab}, dec)
	})
	t.Run("empty", func(t *testing.T) {
		dec, err := DecodeHex("")
		require.NoError(t, err)
		assert.Empty(t, dec)
		assert.Equal(t, "", EncodeHex(nil))
	})
	t.Run("invalid character position", func(t *testing.T) {
		for _, pos := range []int{0, 3, 31, 63} {
			chars := []byte(key1PrivHex)
			chars[pos] = 'i'
			_, err := DecodeHex(string(chars))
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, pos, parseErr.Position)
			assert.Equal(t, "invalid character", parseErr.Reason)
		}
	})
	t.Run("position counts characters", func(t *testing.T) {
		_, err := DecodeHex("aaé0")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 2, parseErr.Position)
	})
	t.Run("odd length", func(t *testing.T) {
		_, err := DecodeHex("abc")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "odd length", parseErr.Reason)
		assert.Equal(t, 2, parseErr.Position)
	})
	t.Run("invalid character wins over odd length", func(t *testing.T) {
		_, err := DecodeHex("a-c")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, 1, parseErr.Position)
	})
}

func TestEncodeHex(t *testing.T) {
	assert.Equal(t, "000102abff", EncodeHex([]byte{0x00, 0x01, 0x02, 0xab, 0xff}))
}
