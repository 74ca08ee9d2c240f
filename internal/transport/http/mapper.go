package http

import (
	"encoding/json"

	"github.com/vovakirdan/signalhub/internal/core"
	"github.com/vovakirdan/signalhub/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. A nil
// command with nil error means the event is ignored (unknown name or
// malformed payload); the router never crashes on bad input.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Event {
	case proto.EventRegisterUser:
		var identity string
		if err := json.Unmarshal(inbound.Data, &identity); err != nil {
			return nil, err
		}
		if identity == "" {
			return nil, nil
		}
		return &core.Command{Kind: core.CommandRegisterUser, Identity: identity}, nil

	case proto.EventCreateRoom:
		var data proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandCreateRoom,
			Identity: data.Identity,
			RoomName: data.RoomName,
		}, nil

	case proto.EventJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandJoinRoom,
			Identity: data.Identity,
			RoomID:   data.RoomID,
		}, nil

	case proto.EventLeaveRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandLeaveRoom,
			Identity: data.Identity,
			RoomID:   data.RoomID,
		}, nil

	case proto.EventSendSignal:
		var data proto.SendSignalData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandSendSignal,
			Identity: data.Identity,
			RoomID:   data.RoomID,
			To:       data.To,
			Signal:   data.Signal,
		}, nil

	case proto.EventCallUser:
		var data proto.CallUserData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:     core.CommandCallUser,
			Identity: data.From,
			To:       data.UserToCall,
			Signal:   data.SignalData,
			Name:     data.Name,
		}, nil

	case proto.EventAnswerCall:
		var data proto.AnswerCallData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind:   core.CommandAnswerCall,
			To:     data.To,
			Signal: data.Signal,
		}, nil

	case proto.EventEndCall:
		var data proto.EndCallData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		return &core.Command{Kind: core.CommandEndCall, To: data.To}, nil

	default:
		return nil, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventMe:
		return proto.Outbound{Event: proto.EventMe, Data: event.Handle}
	case core.EventOnlineUsers:
		return proto.Outbound{Event: proto.EventOnlineUsers, Data: event.Users}
	case core.EventAvailableRooms:
		rooms := make([]proto.RoomSummaryData, 0, len(event.Rooms))
		for _, room := range event.Rooms {
			rooms = append(rooms, proto.RoomSummaryData{
				ID:               room.ID,
				Name:             room.Name,
				ParticipantCount: room.ParticipantCount,
			})
		}
		return proto.Outbound{Event: proto.EventAvailableRooms, Data: rooms}
	case core.EventRoomCreated:
		return proto.Outbound{Event: proto.EventRoomCreated, Data: proto.RoomCreatedData{
			RoomID:   event.RoomID,
			RoomName: event.RoomName,
		}}
	case core.EventRoomError:
		msg := "room error"
		if event.Error != nil {
			msg = event.Error.Message
		}
		return proto.Outbound{Event: proto.EventRoomError, Data: proto.RoomErrorData{Message: msg}}
	case core.EventUserJoinedRoom:
		return proto.Outbound{Event: proto.EventUserJoinedRoom, Data: proto.RoomEventData{
			RoomID:       event.RoomID,
			Identity:     event.Identity,
			Participants: event.Participants,
		}}
	case core.EventUserLeftRoom:
		return proto.Outbound{Event: proto.EventUserLeftRoom, Data: proto.RoomEventData{
			RoomID:       event.RoomID,
			Identity:     event.Identity,
			Participants: event.Participants,
		}}
	case core.EventRoomParticipants:
		return proto.Outbound{Event: proto.EventRoomParticipants, Data: proto.RoomParticipantsData{
			RoomID:       event.RoomID,
			Participants: event.Participants,
		}}
	case core.EventReceiveSignal:
		return proto.Outbound{Event: proto.EventReceiveSignal, Data: proto.ReceiveSignalData{
			Signal: event.Signal,
			From:   event.From,
		}}
	case core.EventIncomingCall:
		return proto.Outbound{Event: proto.EventCallUser, Data: proto.IncomingCallData{
			Signal: event.Signal,
			From:   event.From,
			Name:   event.DisplayName,
		}}
	case core.EventCallAccepted:
		return proto.Outbound{Event: proto.EventCallAccepted, Data: event.Signal}
	case core.EventCallEnded:
		return proto.Outbound{Event: proto.EventCallEnded}
	default:
		return proto.Outbound{Event: "unknown"}
	}
}
