package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/signalhub/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	identity := flag.String("identity", "tester", "identity to register")
	roomName := flag.String("room", "smoke room", "room name to create and join")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	send := func(event string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", event, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Event: event, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", event, err)
		}
		return nil
	}

	if err := send(proto.EventRegisterUser, *identity); err != nil {
		return err
	}
	if err := send(proto.EventCreateRoom, proto.CreateRoomData{Identity: *identity, RoomName: *roomName}); err != nil {
		return err
	}

	joined := false
	for {
		var outbound struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("received event=%s data=%s\n", outbound.Event, outbound.Data)

		switch outbound.Event {
		case proto.EventRoomCreated:
			var created proto.RoomCreatedData
			if err := json.Unmarshal(outbound.Data, &created); err != nil {
				return fmt.Errorf("unmarshal roomCreated: %w", err)
			}
			if err := send(proto.EventJoinRoom, proto.JoinRoomData{Identity: *identity, RoomID: created.RoomID}); err != nil {
				return err
			}
		case proto.EventRoomParticipants:
			joined = true
		case proto.EventAvailableRooms:
			if joined {
				return nil
			}
		}
	}
}
