package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventMe tells a freshly opened channel its own handle.
	EventMe EventKind = iota
	// EventOnlineUsers carries the identity -> handle presence snapshot.
	EventOnlineUsers
	// EventAvailableRooms carries the live-room presence snapshot.
	EventAvailableRooms
	// EventRoomCreated confirms room creation to the requester.
	EventRoomCreated
	// EventRoomError reports a room-scoped failure to the requester.
	EventRoomError
	// EventUserJoinedRoom notifies room members about a join.
	EventUserJoinedRoom
	// EventUserLeftRoom notifies room members about a leave.
	EventUserLeftRoom
	// EventRoomParticipants delivers the participant list to a joiner.
	EventRoomParticipants
	// EventReceiveSignal delivers a relayed room signal to its target.
	EventReceiveSignal
	// EventIncomingCall delivers a direct call offer to its target.
	EventIncomingCall
	// EventCallAccepted delivers a call answer to the original caller.
	EventCallAccepted
	// EventCallEnded notifies a channel that a call has ended.
	EventCallEnded
)

// Event is sent to clients to describe what happened in the system.
// Snapshot fields hold fresh copies; receivers may not mutate them.
type Event struct {
	Kind         EventKind
	Handle       string            // EventMe
	Users        map[string]string // EventOnlineUsers
	Rooms        []RoomSummary     // EventAvailableRooms
	RoomID       string
	RoomName     string
	Identity     string   // joining/leaving participant
	Participants []string // sorted participant identities
	Signal       json.RawMessage
	From         string // sender identity (signal) or caller handle (call)
	DisplayName  string // caller display name
	Error        *CoreError
}
