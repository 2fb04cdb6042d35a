package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/any-sign/util/crypto"
)

const (
	testPrivWIF = "5JB3B6o5cbtYfgabgNKDwyYjs58jgUwCLDopNuS5QQdaGv1EHt2"
	testPrivHex = "2f1e7b7a130d7ba9da0068b3bb0ba1d79e7e77110302c9f746c3c2a63fe40088"
	testPubHex  = "026a2c795a9776f75464aa3bda3534c3154a6e91b357b1181d3f515110f84b67c5"
	testSig     = "5195115d9be2547b720ee74c23dd841842875db6eae1f5da8605b050a49e702b4aa83be72ab7e3cb20f17c657011b49f4c8632be2745ba4de79e6aa05da57b35"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAlgorithms(t *testing.T) {
	out, err := run(t, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(crypto.AlgorithmNames(), "\n"), out)
}

func TestPubkey(t *testing.T) {
	for _, key := range []string{testPrivHex, testPrivWIF} {
		out, err := run(t, "pubkey", key)
		require.NoError(t, err)
		assert.Equal(t, testPubHex, out)
	}
	_, err := run(t, "pubkey", "--strict", testPrivWIF)
	require.NoError(t, err)
}

func TestSign(t *testing.T) {
	out, err := run(t, "sign", testPrivHex, "test")
	require.NoError(t, err)
	assert.Equal(t, testSig, out)

	out, err = run(t, "sign", "--hex-message", testPrivWIF, "74657374")
	require.NoError(t, err)
	assert.Equal(t, testSig, out)

	_, err = run(t, "sign", "--hex-message", testPrivHex, "7g")
	var parseErr *crypto.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestVerify(t *testing.T) {
	t.Run("match", func(t *testing.T) {
		out, err := run(t, "verify", testPubHex, testSig, "test")
		require.NoError(t, err)
		assert.Equal(t, "true", out)
	})
	t.Run("mismatch", func(t *testing.T) {
		out, err := run(t, "verify", testPubHex, testSig, "other")
		assert.ErrorIs(t, err, ErrSignatureMismatch)
		assert.Equal(t, "false", out)
	})
	t.Run("malformed signature", func(t *testing.T) {
		_, err := run(t, "verify", testPubHex, testSig[:10], "test")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSignatureMismatch)
	})
	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := run(t, "--algorithm", "rsa", "verify", testPubHex, testSig, "test")
		assert.ErrorIs(t, err, crypto.ErrAlgorithmNotFound)
	})
}

func TestWIF(t *testing.T) {
	out, err := run(t, "wif", testPrivWIF)
	require.NoError(t, err)
	assert.Equal(t, testPrivHex, out)

	out, err = run(t, "wif", "--strict", testPrivWIF)
	require.NoError(t, err)
	assert.Equal(t, testPrivHex, out)

	_, err = run(t, "wif", "--strict", "--network", "testnet3", testPrivWIF)
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "log:\n  defaultLevel: error\nsigning:\n  algorithm: ed25519\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	out, err := run(t, "--config", path, "pubkey", "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	require.NoError(t, err)
	assert.Equal(t, "d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a", out)

	// flag overrides the config
	out, err = run(t, "--config", path, "--algorithm", "secp256k1", "pubkey", testPrivHex)
	require.NoError(t, err)
	assert.Equal(t, testPubHex, out)
}
