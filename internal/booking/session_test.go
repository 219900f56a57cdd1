package booking

import (
	"context"
	"testing"
	"time"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(time.Minute)

	if err := store.Save(ctx, Session{ID: "s1", Step: StepPickDateTime, Form: FormData{FirstName: "Claire"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	s, ok, err := store.Get(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if s.Step != StepPickDateTime || s.Form.FirstName != "Claire" {
		t.Fatalf("unexpected session: %+v", s)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "s1"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore(10 * time.Millisecond)

	if err := store.Save(ctx, Session{ID: "s2"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok, _ := store.Get(ctx, "s2"); ok {
		t.Fatal("expected expired session to be gone")
	}
}
