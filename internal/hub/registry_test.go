package hub

import "testing"

func TestRegistryRejectsTakenName(t *testing.T) {
	r := NewRegistry()
	a := NewClient("alice", nil)
	b := NewClient("alice", nil)

	if err := r.Register("alice", a); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register("alice", b); err != ErrNameTaken {
		t.Fatalf("expected ErrNameTaken, got %v", err)
	}

	names := r.Names()
	if len(names) != 1 || names[0] != "alice" {
		t.Fatalf("unexpected roster: %v", names)
	}
}

func TestRegistryRegisterIdempotentForSameClient(t *testing.T) {
	r := NewRegistry()
	a := NewClient("alice", nil)

	if err := r.Register("alice", a); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register("alice", a); err != nil {
		t.Fatalf("re-register same client: %v", err)
	}
	if len(r.Names()) != 1 {
		t.Fatalf("unexpected roster size: %d", len(r.Names()))
	}
}

func TestRegistryUnregisterGuardsIdentity(t *testing.T) {
	r := NewRegistry()
	a := NewClient("alice", nil)
	stale := NewClient("alice", nil)

	if err := r.Register("alice", a); err != nil {
		t.Fatalf("register: %v", err)
	}

	// A superseded duplicate closing late must not evict the live owner.
	if r.Unregister("alice", stale) {
		t.Fatal("stale client removed a registration it does not own")
	}
	if !r.Contains("alice") {
		t.Fatal("live registration lost")
	}

	if !r.Unregister("alice", a) {
		t.Fatal("owner could not unregister")
	}
	if r.Contains("alice") {
		t.Fatal("registration survived unregister")
	}
}

func TestRegistryNamesIsSnapshot(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("alice", NewClient("alice", nil)); err != nil {
		t.Fatalf("register: %v", err)
	}

	names := r.Names()
	if err := r.Register("bob", NewClient("bob", nil)); err != nil {
		t.Fatalf("register: %v", err)
	}

	if len(names) != 1 {
		t.Fatalf("snapshot mutated by later register: %v", names)
	}
}
