package webhook

import (
	"strings"
	"testing"
)

func TestComputeSignature(t *testing.T) {
	// Pinned vector so an algorithm or encoding change cannot slip through.
	payload := []byte(`{"id":"evt_01j9","eventType":"checkout.completed","createdAt":1730107800}`)

	got := ComputeSignature(payload, "whsec_c0ffee")
	want := "aabd77befc7912ed9622d14eea6bc25c577bb19a0c8bd2016ce0ad3a92ee3c40"

	if got != want {
		t.Errorf("ComputeSignature() = %q, want %q", got, want)
	}
}

func TestVerify(t *testing.T) {
	payload := []byte(`{"id":"evt_1","eventType":"subscription.active","createdAt":1700000000}`)
	secret := "whsec_test"
	valid := ComputeSignature(payload, secret)

	tests := map[string]struct {
		payload   []byte
		signature string
		secret    string
		want      bool
	}{
		"valid":              {payload, valid, secret, true},
		"wrong secret":       {payload, valid, "whsec_other", false},
		"tampered payload":   {[]byte(`{"id":"evt_2","eventType":"subscription.active","createdAt":1700000000}`), valid, secret, false},
		"truncated":          {payload, valid[:32], secret, false},
		"padded":             {payload, valid + "00", secret, false},
		"uppercase hex":      {payload, strings.ToUpper(valid), secret, false},
		"empty signature":    {payload, "", secret, false},
		"garbage signature":  {payload, "not-hex-at-all", secret, false},
		"same length forged": {payload, strings.Repeat("a", len(valid)), secret, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Verify(tt.payload, tt.signature, tt.secret); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerifySingleBitFlip(t *testing.T) {
	payload := []byte(`{"id":"evt_9","eventType":"refund.created","createdAt":1700000001}`)
	secret := "whsec_bits"
	valid := ComputeSignature(payload, secret)

	for i := range payload {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(payload))
			copy(mutated, payload)
			mutated[i] ^= 1 << bit

			if Verify(mutated, valid, secret) {
				t.Fatalf("Verify() accepted payload with byte %d bit %d flipped", i, bit)
			}
		}
	}

	sig := []byte(valid)
	for i := range sig {
		for bit := 0; bit < 8; bit++ {
			mutated := make([]byte, len(sig))
			copy(mutated, sig)
			mutated[i] ^= 1 << bit

			if Verify(payload, string(mutated), secret) {
				t.Fatalf("Verify() accepted signature with byte %d bit %d flipped", i, bit)
			}
		}
	}
}
