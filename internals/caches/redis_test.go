package caches

import "testing"

func TestNewRedisClient_UnreachableServerReturnsNil(t *testing.T) {
	// Port 1 tidak ada yang listen — ping gagal cepat, client harus nil
	// (caller degrade tanpa cache), bukan client setengah hidup.
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")

	if client := NewRedisClient(); client != nil {
		_ = client.Close()
		t.Fatal("expected nil client when redis is unreachable")
	}
}
