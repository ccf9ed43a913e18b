package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("[S [NP the dog]]"))
	h2 := Hash([]byte("[S [NP the dog]]"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("[S [NP the cat]]"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before set
	if _, hit, _ := c.Get(ctx, "tree"); hit {
		t.Error("expected miss before Set")
	}

	if err := c.Set(ctx, "tree", []byte("png-bytes"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "tree")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if string(data) != "png-bytes" {
		t.Errorf("Get = %q, want %q", data, "png-bytes")
	}

	if err := c.Delete(ctx, "tree"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "tree"); hit {
		t.Error("expected miss after Delete")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "stale", []byte("old"), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// Options must be part of the key
	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", FontSize: 16})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png", FontSize: 16})
	ak3 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", FontSize: 20})
	if ak1 == ak2 {
		t.Error("different formats should produce different keys")
	}
	if ak1 == ak3 {
		t.Error("different font sizes should produce different keys")
	}
	ak4 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", FontSize: 16, Graph: true})
	if ak1 == ak4 {
		t.Error("the graph view should produce different keys")
	}

	// Geometry keys are format independent
	gk1 := k.GeometryKey("hash123", ArtifactKeyOpts{Format: "svg", FontSize: 16})
	gk2 := k.GeometryKey("hash123", ArtifactKeyOpts{Format: "png", FontSize: 16})
	if gk1 != gk2 {
		t.Error("geometry keys should not depend on format")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "user:123:")

	key := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if len(key) < 9 || key[:9] != "user:123:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Nil inner falls back to the default keyer
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.GeometryKey("abc", ArtifactKeyOpts{})
	if len(key) < 7 || key[:7] != "prefix:" {
		t.Errorf("unexpected key with nil inner: %s", key)
	}
}
