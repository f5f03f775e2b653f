package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the signature Payloop attaches to payload when it
// is signed with secret: the lowercase hex encoding of the HMAC-SHA256 of
// the raw payload bytes.
func ComputeSignature(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature authenticates payload under secret.
//
// The received signature is compared against the recomputed one in constant
// time over their hex encodings. A length mismatch fails immediately, and
// uppercase hex digits never match. Verify performs no I/O and never logs;
// callers decide how a failure is reported.
func Verify(payload []byte, signature, secret string) bool {
	expected := ComputeSignature(payload, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
