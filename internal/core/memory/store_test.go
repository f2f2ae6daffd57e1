package memory

import (
	"context"
	"testing"
)

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "session-a", []CookingMemory{{Name: "dal"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put(ctx, "session-b", []CookingMemory{{Name: "rice"}, {Name: "curry"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	a, err := store.List(ctx, "session-a")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(a) != 1 || a[0].Name != "dal" {
		t.Errorf("session-a = %v", a)
	}

	b, err := store.List(ctx, "session-b")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(b) != 2 {
		t.Errorf("session-b = %v", b)
	}
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List = %v, want empty", got)
	}
}

func TestMemoryStoreSnapshotCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []CookingMemory{{Name: "dal"}}
	if err := store.Put(ctx, "s", original); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// 呼叫端修改自己的切片不影響儲存的內容
	original[0].Name = "changed"

	got, err := store.List(ctx, "s")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Name != "dal" {
		t.Errorf("stored memory mutated: %q", got[0].Name)
	}

	// List 回傳的快照同樣獨立
	got[0].Name = "changed again"
	again, _ := store.List(ctx, "s")
	if again[0].Name != "dal" {
		t.Errorf("snapshot not isolated: %q", again[0].Name)
	}
}
