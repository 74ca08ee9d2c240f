package core

import (
	"sort"

	"github.com/google/uuid"
)

// newRoomID returns a short room token. The first uuid group is unique
// enough for a single-process directory; collisions are not checked.
func newRoomID() string {
	return uuid.NewString()[:8]
}

// Room groups the participants of one signaling session. Participants
// are keyed by identity; the value is the channel that identity joined
// with. A room with zero participants must not persist -- the directory
// deletes it in the same operation that emptied it.
type Room struct {
	ID      string
	Name    string
	Creator string

	participants map[string]*Client
}

// NewRoom constructs a room with no participants. The creator is
// recorded but not auto-joined.
func NewRoom(id, name, creator string) *Room {
	return &Room{
		ID:           id,
		Name:         name,
		Creator:      creator,
		participants: make(map[string]*Client),
	}
}

// AddParticipant inserts or replaces the participant entry for identity.
func (r *Room) AddParticipant(identity string, c *Client) {
	r.participants[identity] = c
}

// RemoveParticipant deletes identity from the room. Returns the client
// that backed the entry, or nil if identity was not a participant.
func (r *Room) RemoveParticipant(identity string) *Client {
	c, ok := r.participants[identity]
	if !ok {
		return nil
	}
	delete(r.participants, identity)
	return c
}

// Member returns the client backing a participant identity.
func (r *Room) Member(identity string) (*Client, bool) {
	c, ok := r.participants[identity]
	return c, ok
}

// RemoveByHandle deletes every participant backed by the given handle
// and returns the removed identities, sorted. Used by the disconnect
// cascade.
func (r *Room) RemoveByHandle(handle string) []string {
	var removed []string
	for identity, c := range r.participants {
		if c.Handle == handle {
			delete(r.participants, identity)
			removed = append(removed, identity)
		}
	}
	sort.Strings(removed)
	return removed
}

// Participants returns the sorted identity list of current participants.
func (r *Room) Participants() []string {
	out := make([]string, 0, len(r.participants))
	for identity := range r.participants {
		out = append(out, identity)
	}
	sort.Strings(out)
	return out
}

// Broadcast sends an event to every participant's channel.
func (r *Room) Broadcast(event *Event) {
	for _, c := range r.participants {
		select {
		case c.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// Len returns the number of participants.
func (r *Room) Len() int {
	return len(r.participants)
}

// Empty returns true if no participants remain.
func (r *Room) Empty() bool {
	return len(r.participants) == 0
}

// Directory is the live-room index. Like the registry it is owned by
// the hub and only touched under its lock.
type Directory struct {
	rooms map[string]*Room
}

// NewDirectory constructs an empty room directory.
func NewDirectory() *Directory {
	return &Directory{rooms: make(map[string]*Room)}
}

// Create stores a new room under the given id.
func (d *Directory) Create(id, name, creator string) *Room {
	room := NewRoom(id, name, creator)
	d.rooms[id] = room
	return room
}

// Get returns the room with the given id.
func (d *Directory) Get(id string) (*Room, bool) {
	room, ok := d.rooms[id]
	return room, ok
}

// Delete removes the room with the given id.
func (d *Directory) Delete(id string) {
	delete(d.rooms, id)
}

// Rooms returns all live rooms sorted by id, for deterministic sweeps.
func (d *Directory) Rooms() []*Room {
	out := make([]*Room, 0, len(d.rooms))
	for _, room := range d.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
