package core

// RoomSummary is one entry of the available-rooms projection.
type RoomSummary struct {
	ID               string
	Name             string
	ParticipantCount int
}

// Presence projections are derived on demand from the authoritative
// registry and directory. Full snapshot every time, no diffing; caching
// would drift under churn.

func onlineUsersSnapshot(reg *Registry) *Event {
	return &Event{Kind: EventOnlineUsers, Users: reg.Snapshot()}
}

func availableRoomsSnapshot(dir *Directory) *Event {
	rooms := dir.Rooms()
	out := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, RoomSummary{
			ID:               room.ID,
			Name:             room.Name,
			ParticipantCount: room.Len(),
		})
	}
	return &Event{Kind: EventAvailableRooms, Rooms: out}
}
