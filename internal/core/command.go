package core

import "encoding/json"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegisterUser binds an identity to the client's channel.
	CommandRegisterUser CommandKind = iota
	// CommandCreateRoom creates a new signaling room.
	CommandCreateRoom
	// CommandJoinRoom adds the identity to a room's participant set.
	CommandJoinRoom
	// CommandLeaveRoom removes the identity from a room's participant set.
	CommandLeaveRoom
	// CommandSendSignal relays a signaling payload to a room participant.
	CommandSendSignal
	// CommandCallUser relays a direct call offer to a registered identity.
	CommandCallUser
	// CommandAnswerCall relays a call answer to a raw channel handle.
	CommandAnswerCall
	// CommandEndCall ends a call for a raw channel handle.
	CommandEndCall
)

// Command represents an action requested by a client. Fields are used
// per kind; unused fields stay zero.
type Command struct {
	Kind     CommandKind
	Identity string          // acting identity
	RoomID   string          // join/leave/sendSignal target room
	RoomName string          // createRoom desired display name
	To       string          // target identity (sendSignal, callUser) or handle (answerCall, endCall)
	Signal   json.RawMessage // opaque ICE/SDP payload, relayed untouched
	Name     string          // caller display name for callUser
}
