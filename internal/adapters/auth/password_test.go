package auth

import "testing"

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	digest, err := hasher.Hash("pass-word")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	if digest == "pass-word" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !hasher.Matches("pass-word", digest) {
		t.Error("expected matching password to verify")
	}
	if hasher.Matches("wrong", digest) {
		t.Error("expected mismatching password to fail")
	}
}
