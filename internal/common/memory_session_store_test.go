package common

import (
	"context"
	"testing"
	"time"
)

type testSession struct {
	Mode  string `json:"mode"`
	Input string `json:"input"`
}

func TestMemorySessionStore_SaveLoad(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()

	original := &testSession{Mode: "number", Input: "AB123"}
	if err := store.Save(ctx, "s1", original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Later mutations must not leak into the stored copy
	original.Input = "changed"

	var got testSession
	found, err := store.Load(ctx, "s1", &got)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("Expected session to be found")
	}
	if got.Mode != "number" || got.Input != "AB123" {
		t.Errorf("Unexpected session %+v", got)
	}
}

func TestMemorySessionStore_Missing(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)

	var got testSession
	found, err := store.Load(context.Background(), "missing", &got)
	if err != nil || found {
		t.Errorf("Expected (false, nil), got (%v, %v)", found, err)
	}
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(20 * time.Millisecond)
	ctx := context.Background()

	if err := store.Save(ctx, "s1", testSession{Mode: "route"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	var got testSession
	if found, _ := store.Load(ctx, "s1", &got); found {
		t.Error("Expected session to expire")
	}
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()

	_ = store.Save(ctx, "s1", testSession{Mode: "route"})
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var got testSession
	if found, _ := store.Load(ctx, "s1", &got); found {
		t.Error("Expected session to be deleted")
	}
	if err := store.Ping(ctx); err != nil {
		t.Errorf("Expected in-memory ping to succeed, got %v", err)
	}
}
