package service

import "testing"

func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret")
	h2 := ComputeRefreshHash("token-a", "secret")
	if h1 != h2 {
		t.Fatal("hash must be deterministic")
	}
	if len(h1) != 64 {
		t.Fatalf("hash length = %d, want 64 hex chars", len(h1))
	}

	if ComputeRefreshHash("token-b", "secret") == h1 {
		t.Error("different tokens must not collide")
	}
	if ComputeRefreshHash("token-a", "other-secret") == h1 {
		t.Error("different secrets must not collide")
	}
}
