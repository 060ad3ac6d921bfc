package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// SignaturePrefix is the scheme tag GitHub-style webhook signatures carry.
const SignaturePrefix = "sha256="

// SignPayload computes the signature header value for a raw request body:
// "sha256=" followed by hex(HMAC-SHA256(secret, body)).
func SignPayload(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return SignaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook signature header against the raw request
// body. The body must be the exact bytes received on the wire; hashing a
// re-serialized body breaks on whitespace and key ordering.
//
// An empty header or one of the wrong length is rejected before any
// comparison. The comparison itself is constant-time so an attacker cannot
// learn how many leading bytes of a guess were correct.
func VerifySignature(body []byte, header string, secret []byte) bool {
	if header == "" {
		return false
	}

	expected := SignPayload(secret, body)
	if len(header) != len(expected) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(header), []byte(expected)) == 1
}
