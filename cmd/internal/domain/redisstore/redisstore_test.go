package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
)

func newPersister(t *testing.T) *Persister {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client, err := Connect(context.Background(), Options{Addr: addr})
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	key := "salondesk-test:" + uuid.NewString()
	t.Cleanup(func() {
		client.Del(context.Background(), key)
		_ = client.Close()
	})
	return New(client, key)
}

func TestLoad_MissingKey(t *testing.T) {
	p := newPersister(t)
	blob, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if blob != nil {
		t.Fatalf("expected nil blob, got %q", blob)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	p := newPersister(t)
	if err := p.Save(ctx, []byte(`{"staff":[]}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	blob, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(blob) != `{"staff":[]}` {
		t.Fatalf("unexpected blob %s", blob)
	}
}
