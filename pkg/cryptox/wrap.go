package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// Key wrapping helpers modelling the client side of invitation key handover.
// The inviter generates an ephemeral key pair, wraps the project secrets key
// under its public half and hands the server only ciphertext plus the key
// pair as opaque strings. The server never calls WrapKey or UnwrapKey.

var ErrUnwrapFailed = errors.New("cryptox: unwrap failed")

// WrapKeyPair is an ephemeral X25519 key pair, base64url encoded for
// transport and storage.
type WrapKeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateWrapKeyPair creates a fresh ephemeral key pair for one invitation.
func GenerateWrapKeyPair() (WrapKeyPair, error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return WrapKeyPair{}, fmt.Errorf("generate wrap key pair: %w", err)
	}
	return WrapKeyPair{
		PublicKey:  base64.RawURLEncoding.EncodeToString(pub[:]),
		PrivateKey: base64.RawURLEncoding.EncodeToString(priv[:]),
	}, nil
}

// WrapKey seals secretsKey under the ephemeral public key (anonymous sealed
// box). Only the holder of the matching private key can open the result.
func WrapKey(secretsKey []byte, publicKey string) (string, error) {
	pub, err := decodeKey32(publicKey)
	if err != nil {
		return "", err
	}

	sealed, err := box.SealAnonymous(nil, secretsKey, pub, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("wrap key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// UnwrapKey opens a wrapped secrets key with the ephemeral key pair. This is
// what the accepting client runs on the private key released to it.
func UnwrapKey(wrapped, publicKey, privateKey string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, ErrUnwrapFailed
	}
	pub, err := decodeKey32(publicKey)
	if err != nil {
		return nil, err
	}
	priv, err := decodeKey32(privateKey)
	if err != nil {
		return nil, err
	}

	out, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return nil, ErrUnwrapFailed
	}
	return out, nil
}

func decodeKey32(s string) (*[32]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return nil, errors.New("cryptox: malformed key")
	}
	var k [32]byte
	copy(k[:], raw)
	return &k, nil
}
