package core

import "testing"

func TestRoomParticipantsSorted(t *testing.T) {
	room := NewRoom("r1", "standup", "alice")

	room.AddParticipant("carol", NewClient("h3", 0))
	room.AddParticipant("alice", NewClient("h1", 0))
	room.AddParticipant("bob", NewClient("h2", 0))

	want := []string{"alice", "bob", "carol"}
	if got := room.Participants(); !equalStrings(got, want) {
		t.Fatalf("participants = %v, want %v", got, want)
	}
}

func TestRoomRemoveParticipant(t *testing.T) {
	room := NewRoom("r1", "standup", "alice")
	c := NewClient("h1", 0)
	room.AddParticipant("alice", c)

	if got := room.RemoveParticipant("alice"); got != c {
		t.Fatalf("remove returned %v, want the joining client", got)
	}
	if got := room.RemoveParticipant("alice"); got != nil {
		t.Fatal("removing a non-member should return nil")
	}
	if !room.Empty() {
		t.Fatal("room should be empty")
	}
}

func TestRoomRemoveByHandle(t *testing.T) {
	room := NewRoom("r1", "standup", "alice")
	shared := NewClient("h1", 0)
	room.AddParticipant("alice", shared)
	room.AddParticipant("alice2", shared)
	room.AddParticipant("bob", NewClient("h2", 0))

	removed := room.RemoveByHandle("h1")
	if !equalStrings(removed, []string{"alice", "alice2"}) {
		t.Fatalf("removed = %v, want both entries backed by h1", removed)
	}
	if !equalStrings(room.Participants(), []string{"bob"}) {
		t.Fatalf("participants = %v, want [bob]", room.Participants())
	}
}

func TestRoomBroadcastReachesAllMembers(t *testing.T) {
	room := NewRoom("r1", "standup", "alice")
	a := NewClient("h1", 0)
	b := NewClient("h2", 0)
	room.AddParticipant("alice", a)
	room.AddParticipant("bob", b)

	room.Broadcast(&Event{Kind: EventUserJoinedRoom, RoomID: "r1"})

	for _, c := range []*Client{a, b} {
		select {
		case ev := <-c.Events:
			if ev.Kind != EventUserJoinedRoom {
				t.Fatalf("unexpected event kind %v", ev.Kind)
			}
		default:
			t.Fatalf("client %s did not receive broadcast", c.Handle)
		}
	}
}

func TestDirectoryDeleteAndList(t *testing.T) {
	dir := NewDirectory()
	dir.Create("b", "second", "bob")
	dir.Create("a", "first", "alice")

	rooms := dir.Rooms()
	if len(rooms) != 2 || rooms[0].ID != "a" || rooms[1].ID != "b" {
		t.Fatalf("rooms not sorted by id: %v", rooms)
	}

	dir.Delete("a")
	if _, ok := dir.Get("a"); ok {
		t.Fatal("deleted room should be gone")
	}
	if _, ok := dir.Get("b"); !ok {
		t.Fatal("other room should remain")
	}
}
