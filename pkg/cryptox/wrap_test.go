package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapUnwrapRoundTrip(t *testing.T) {
	t.Parallel()

	pair, err := GenerateWrapKeyPair()
	require.NoError(t, err)

	secretsKey := []byte("project-secrets-key-material-32b")

	wrapped, err := WrapKey(secretsKey, pair.PublicKey)
	require.NoError(t, err)
	require.NotContains(t, wrapped, string(secretsKey))

	out, err := UnwrapKey(wrapped, pair.PublicKey, pair.PrivateKey)
	require.NoError(t, err)
	require.Equal(t, secretsKey, out)
}

func TestUnwrapFailsWithWrongPrivateKey(t *testing.T) {
	t.Parallel()

	pair, err := GenerateWrapKeyPair()
	require.NoError(t, err)
	other, err := GenerateWrapKeyPair()
	require.NoError(t, err)

	wrapped, err := WrapKey([]byte("secrets"), pair.PublicKey)
	require.NoError(t, err)

	_, err = UnwrapKey(wrapped, pair.PublicKey, other.PrivateKey)
	require.ErrorIs(t, err, ErrUnwrapFailed)
}

func TestWrapRejectsMalformedKeys(t *testing.T) {
	t.Parallel()

	_, err := WrapKey([]byte("secrets"), "not-base64!!")
	require.Error(t, err)

	_, err = UnwrapKey("zz", "short", "short")
	require.Error(t, err)
}
