package crypto

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestSHA256Hasher_KnownDigest(t *testing.T) {
	h := SHA256Hasher{}
	got, err := h.Digest("abc")
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Fatalf("digest mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher{}
	a, _ := h.Digest("Abc123x")
	b, _ := h.Digest("Abc123x")
	c, _ := h.Digest("Abc123y")
	if a != b {
		t.Fatal("same input must give same digest")
	}
	if a == c {
		t.Fatal("different inputs must give different digests")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64 chars, got %d", len(a))
	}
	if !h.Matches(a, "Abc123x") || h.Matches(a, "Abc123y") {
		t.Fatal("Matches disagrees with Digest")
	}
}

func TestBcryptHasher_Matches(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}
	digest, err := h.Digest("Abc123x")
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	if digest == "Abc123x" {
		t.Fatal("digest must not equal plaintext")
	}
	if !h.Matches(digest, "Abc123x") {
		t.Fatal("expected match")
	}
	if h.Matches(digest, "Abc123X") {
		t.Fatal("expected mismatch")
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []string{"", KindSHA256, KindBcrypt} {
		if _, err := New(kind); err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
	}
	if _, err := New("md5"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
