package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-sign/util/crypto"
	"github.com/anyproto/any-sign/util/crypto/mock_crypto"
)

const (
	privHex = "2f1e7b7a130d7ba9da0068b3bb0ba1d79e7e77110302c9f746c3c2a63fe40088"
	sigHex  = "5195115d9be2547b720ee74c23dd841842875db6eae1f5da8605b050a49e702b4aa83be72ab7e3cb20f17c657011b49f4c8632be2745ba4de79e6aa05da57b35"
)

func TestCryptoFactory_SingleKeySigning(t *testing.T) {
	algorithm, err := crypto.NewAlgorithm(crypto.Secp256k1Name)
	require.NoError(t, err)

	factory := crypto.NewCryptoFactory(algorithm)
	assert.Equal(t, crypto.Secp256k1Name, factory.Algorithm().Name())

	privKey, err := crypto.NewSecp256k1PrivateKeyFromHex(privHex)
	require.NoError(t, err)

	signer := factory.NewSigner(privKey)
	sig, err := signer.Sign([]byte("test"))
	require.NoError(t, err)
	assert.Equal(t, sigHex, sig)

	pubKey, err := signer.PublicKey()
	require.NoError(t, err)
	ok, err := signer.Algorithm().Verify(sig, []byte("test"), pubKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSigner_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	privKey, err := crypto.NewSecp256k1PrivateKeyFromHex(privHex)
	require.NoError(t, err)

	algorithm := mock_crypto.NewMockAlgorithm(ctrl)
	algorithm.EXPECT().Sign([]byte("msg"), privKey).Return("abcd", nil)
	algorithm.EXPECT().PublicKey(privKey).Return(nil, &crypto.SigningError{Cause: crypto.ErrInvalidScalar})

	signer := crypto.NewCryptoFactory(algorithm).NewSigner(privKey)
	sig, err := signer.Sign([]byte("msg"))
	require.NoError(t, err)
	assert.Equal(t, "abcd", sig)

	_, err = signer.PublicKey()
	assert.ErrorIs(t, err, crypto.ErrInvalidScalar)
}
