package core

import "testing"

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()

	first := NewClient("h1", 0)
	second := NewClient("h2", 0)

	reg.Register("alice", first)
	reg.Register("alice", second)

	c, ok := reg.Lookup("alice")
	if !ok {
		t.Fatal("alice should be registered")
	}
	if c.Handle != "h2" {
		t.Fatalf("lookup returned %q, want the most recent handle h2", c.Handle)
	}
}

func TestRegistryLookupAbsent(t *testing.T) {
	reg := NewRegistry()

	if _, ok := reg.Lookup("ghost"); ok {
		t.Fatal("lookup of unregistered identity should report absence")
	}
}

func TestRegistryRemoveByHandle(t *testing.T) {
	reg := NewRegistry()
	c := NewClient("h1", 0)

	reg.Register("alice", c)

	removed := reg.RemoveByHandle("h1")
	if !equalStrings(removed, []string{"alice"}) {
		t.Fatalf("removed = %v, want [alice]", removed)
	}
	if _, ok := reg.Lookup("alice"); ok {
		t.Fatal("alice should be gone after removal")
	}
	if again := reg.RemoveByHandle("h1"); len(again) != 0 {
		t.Fatalf("second removal should be a no-op, got %v", again)
	}
}

// A client re-registering under two names leaves both identities bound
// to the same handle; removal must sweep them all.
func TestRegistryRemoveByHandleAliased(t *testing.T) {
	reg := NewRegistry()
	c := NewClient("h1", 0)

	reg.Register("alice", c)
	reg.Register("alice2", c)

	removed := reg.RemoveByHandle("h1")
	if !equalStrings(removed, []string{"alice", "alice2"}) {
		t.Fatalf("removed = %v, want both aliases", removed)
	}
	if len(reg.Snapshot()) != 0 {
		t.Fatal("registry should be empty")
	}
}

func TestRegistrySnapshotIsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Register("alice", NewClient("h1", 0))

	snap := reg.Snapshot()
	snap["bob"] = "h9"

	if _, ok := reg.Lookup("bob"); ok {
		t.Fatal("mutating a snapshot must not touch the registry")
	}
	if got := reg.Snapshot()["alice"]; got != "h1" {
		t.Fatalf("snapshot alice = %q, want h1", got)
	}
}
