package proto

import "encoding/json"

// Inbound is the envelope for named events coming from the client.
type Inbound struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Outbound is the envelope for named events sent to the client.
type Outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Wire event names. Inbound and outbound share one namespace; callUser
// is both (offer in, relayed offer out).
const (
	EventMe               = "me"
	EventOnlineUsers      = "onlineUsers"
	EventAvailableRooms   = "availableRooms"
	EventRegisterUser     = "registerUser"
	EventCreateRoom       = "createRoom"
	EventRoomCreated      = "roomCreated"
	EventJoinRoom         = "joinRoom"
	EventLeaveRoom        = "leaveRoom"
	EventRoomError        = "roomError"
	EventUserJoinedRoom   = "userJoinedRoom"
	EventUserLeftRoom     = "userLeftRoom"
	EventRoomParticipants = "roomParticipants"
	EventSendSignal       = "sendSignal"
	EventReceiveSignal    = "receiveSignal"
	EventCallUser         = "callUser"
	EventAnswerCall       = "answerCall"
	EventCallAccepted     = "callAccepted"
	EventEndCall          = "endCall"
	EventCallEnded        = "callEnded"
)

// CreateRoomData requests a new room. RoomName is optional; the server
// derives a default from the identity when empty.
type CreateRoomData struct {
	Identity string `json:"identity"`
	RoomName string `json:"roomName,omitempty"`
}

// RoomCreatedData confirms room creation to the requester.
type RoomCreatedData struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
}

// JoinRoomData requests membership in an existing room. The same shape
// serves leaveRoom.
type JoinRoomData struct {
	Identity string `json:"identity"`
	RoomID   string `json:"roomId"`
}

// RoomErrorData reports a room-scoped failure to the requester.
type RoomErrorData struct {
	Message string `json:"message"`
}

// RoomEventData notifies room members about a join or leave.
type RoomEventData struct {
	RoomID       string   `json:"roomId"`
	Identity     string   `json:"identity"`
	Participants []string `json:"participants"`
}

// RoomParticipantsData delivers the current participant list to a joiner.
type RoomParticipantsData struct {
	RoomID       string   `json:"roomId"`
	Participants []string `json:"participants"`
}

// SendSignalData relays an ICE/SDP payload to a room participant.
type SendSignalData struct {
	Signal   json.RawMessage `json:"signal"`
	Identity string          `json:"identity"`
	RoomID   string          `json:"roomId"`
	To       string          `json:"to"`
}

// ReceiveSignalData delivers a relayed payload; From is the sender identity.
type ReceiveSignalData struct {
	Signal json.RawMessage `json:"signal"`
	From   string          `json:"from"`
}

// CallUserData is a direct call offer from the client.
type CallUserData struct {
	From       string          `json:"from"`
	UserToCall string          `json:"userToCall"`
	SignalData json.RawMessage `json:"signalData"`
	Name       string          `json:"name"`
}

// IncomingCallData is the relayed offer; From is the caller's channel
// handle so the callee can answer straight back at it.
type IncomingCallData struct {
	Signal json.RawMessage `json:"signal"`
	From   string          `json:"from"`
	Name   string          `json:"name"`
}

// AnswerCallData routes a call answer to a raw channel handle.
type AnswerCallData struct {
	To     string          `json:"to"`
	Signal json.RawMessage `json:"signal"`
}

// EndCallData ends a call for a raw channel handle.
type EndCallData struct {
	To string `json:"to"`
}

// RoomSummaryData is one entry of the availableRooms projection.
type RoomSummaryData struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ParticipantCount int    `json:"participantCount"`
}
