package core

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Hub owns all shared signaling state: the identity registry, the room
// directory, and the set of open channels. Every inbound command is
// processed by the single Run goroutine; a per-client pump preserves
// the receipt order of each channel's own commands. The mutex exists
// only so the REST layer can read presence snapshots consistently.
type Hub struct {
	mu       sync.Mutex
	registry *Registry
	dir      *Directory
	clients  map[string]*Client // handle -> open channel

	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	stopped    chan struct{}

	log zerolog.Logger
}

type clientCommand struct {
	client *Client
	cmd    *Command
}

// NewHub constructs a hub. A nil logger disables logging.
func NewHub(logger *zerolog.Logger) *Hub {
	l := zerolog.Nop()
	if logger != nil {
		l = *logger
	}
	return &Hub{
		registry:   NewRegistry(),
		dir:        NewDirectory(),
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan clientCommand, 64),
		stopped:    make(chan struct{}),
		log:        l,
	}
}

// RegisterClient hands a freshly opened channel to the hub.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopped:
	}
}

// UnregisterClient tells the hub a channel has closed. The transport
// calls this exactly once per channel.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stopped:
	}
}

// Run processes lifecycle notifications and commands until ctx ends.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleOpen(c)
			go h.pump(ctx, c)
		case c := <-h.unregister:
			h.handleClose(c)
		case cc := <-h.commands:
			h.dispatch(cc.client, cc.cmd)
		}
	}
}

// pump forwards one client's commands into the hub queue. One goroutine
// per client keeps that channel's commands in receipt order.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case cmd := <-c.Commands:
			select {
			case h.commands <- clientCommand{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			case <-c.done:
				return
			}
		}
	}
}

// OnlineUsers returns the current identity -> handle projection.
func (h *Hub) OnlineUsers() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.registry.Snapshot()
}

// AvailableRooms returns the current live-room projection.
func (h *Hub) AvailableRooms() []RoomSummary {
	h.mu.Lock()
	defer h.mu.Unlock()
	return availableRoomsSnapshot(h.dir).Rooms
}

func (h *Hub) handleOpen(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.Handle] = c
	h.send(c, &Event{Kind: EventMe, Handle: c.Handle})
	h.send(c, onlineUsersSnapshot(h.registry))
	h.send(c, availableRoomsSnapshot(h.dir))

	h.log.Info().Str("handle", c.Handle).Msg("channel open")
}

// handleClose runs the disconnect cascade: drop registry bindings, sweep
// the rooms this channel joined, then refresh presence for everyone left. The trailing
// callEnded broadcast goes to all remaining channels whether or not the
// closing one was in a call; scoping it to call peers is a possible
// follow-up.
func (h *Hub) handleClose(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.Handle]; !ok {
		return
	}
	delete(h.clients, c.Handle)
	close(c.done)

	identities := h.registry.RemoveByHandle(c.Handle)

	// c.Rooms tracks every room this channel ever joined; entries it no
	// longer backs are skipped by the handle match below.
	joined := make([]string, 0, len(c.Rooms))
	for roomID := range c.Rooms {
		joined = append(joined, roomID)
	}
	sort.Strings(joined)

	for _, roomID := range joined {
		room, ok := h.dir.Get(roomID)
		if !ok {
			continue
		}
		removed := room.RemoveByHandle(c.Handle)
		for _, identity := range removed {
			room.Broadcast(&Event{
				Kind:         EventUserLeftRoom,
				RoomID:       room.ID,
				Identity:     identity,
				Participants: room.Participants(),
			})
		}
		if len(removed) > 0 && room.Empty() {
			h.dir.Delete(room.ID)
			h.log.Info().Str("room_id", room.ID).Msg("room deleted, last participant disconnected")
		}
	}

	h.broadcast(onlineUsersSnapshot(h.registry))
	h.broadcast(availableRoomsSnapshot(h.dir))
	h.broadcast(&Event{Kind: EventCallEnded})

	close(c.Events)

	h.log.Info().Str("handle", c.Handle).Strs("identities", identities).Msg("channel closed")
}

func (h *Hub) dispatch(c *Client, cmd *Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Commands can race the close cascade through the pump; drop any
	// that arrive for a channel already gone.
	if _, ok := h.clients[c.Handle]; !ok {
		return
	}

	switch cmd.Kind {
	case CommandRegisterUser:
		h.registerUser(c, cmd)
	case CommandCreateRoom:
		h.createRoom(c, cmd)
	case CommandJoinRoom:
		h.joinRoom(c, cmd)
	case CommandLeaveRoom:
		h.leaveRoom(c, cmd)
	case CommandSendSignal:
		h.sendSignal(cmd)
	case CommandCallUser:
		h.callUser(c, cmd)
	case CommandAnswerCall:
		h.answerCall(cmd)
	case CommandEndCall:
		h.endCall(cmd)
	}
}

func (h *Hub) registerUser(c *Client, cmd *Command) {
	h.registry.Register(cmd.Identity, c)
	h.broadcast(onlineUsersSnapshot(h.registry))
	h.log.Info().Str("identity", cmd.Identity).Str("handle", c.Handle).Msg("user registered")
}

func (h *Hub) createRoom(c *Client, cmd *Command) {
	name := cmd.RoomName
	if name == "" {
		name = cmd.Identity + "'s room"
	}
	room := h.dir.Create(newRoomID(), name, cmd.Identity)

	h.send(c, &Event{Kind: EventRoomCreated, RoomID: room.ID, RoomName: room.Name})
	h.broadcast(availableRoomsSnapshot(h.dir))

	h.log.Info().Str("room_id", room.ID).Str("room_name", room.Name).Str("creator", cmd.Identity).Msg("room created")
}

func (h *Hub) joinRoom(c *Client, cmd *Command) {
	room, ok := h.dir.Get(cmd.RoomID)
	if !ok {
		h.send(c, &Event{
			Kind:   EventRoomError,
			RoomID: cmd.RoomID,
			Error:  coreError(ErrCodeRoomNotFound, "room not found"),
		})
		return
	}

	room.AddParticipant(cmd.Identity, c)
	c.Rooms[room.ID] = struct{}{}

	participants := room.Participants()
	room.Broadcast(&Event{
		Kind:         EventUserJoinedRoom,
		RoomID:       room.ID,
		Identity:     cmd.Identity,
		Participants: participants,
	})
	h.send(c, &Event{
		Kind:         EventRoomParticipants,
		RoomID:       room.ID,
		Participants: participants,
	})
	h.broadcast(availableRoomsSnapshot(h.dir))

	h.log.Info().Str("identity", cmd.Identity).Str("room_id", room.ID).Msg("user joined room")
}

func (h *Hub) leaveRoom(c *Client, cmd *Command) {
	room, ok := h.dir.Get(cmd.RoomID)
	if !ok {
		return
	}
	member := room.RemoveParticipant(cmd.Identity)
	if member == nil {
		return
	}
	delete(member.Rooms, room.ID)

	room.Broadcast(&Event{
		Kind:         EventUserLeftRoom,
		RoomID:       room.ID,
		Identity:     cmd.Identity,
		Participants: room.Participants(),
	})
	if room.Empty() {
		h.dir.Delete(room.ID)
		h.log.Info().Str("room_id", room.ID).Msg("room deleted, empty")
	}
	h.broadcast(availableRoomsSnapshot(h.dir))

	h.log.Info().Str("identity", cmd.Identity).Str("room_id", room.ID).Msg("user left room")
}

// sendSignal is best-effort group signaling: a missing room or target is
// dropped without a response to the sender.
func (h *Hub) sendSignal(cmd *Command) {
	room, ok := h.dir.Get(cmd.RoomID)
	if !ok {
		h.log.Debug().Str("room_id", cmd.RoomID).Msg("signal to unknown room dropped")
		return
	}
	target, ok := room.Member(cmd.To)
	if !ok {
		h.log.Debug().Str("room_id", cmd.RoomID).Str("to", cmd.To).Msg("signal to unknown participant dropped")
		return
	}
	h.send(target, &Event{
		Kind:   EventReceiveSignal,
		Signal: cmd.Signal,
		From:   cmd.Identity,
	})
}

// callUser relays a direct call offer. The From field carries the
// caller's current channel handle so the callee can address answerCall
// straight back at it.
func (h *Hub) callUser(c *Client, cmd *Command) {
	target, ok := h.registry.Lookup(cmd.To)
	if !ok {
		h.log.Debug().Str("to", cmd.To).Msg("call to unregistered identity dropped")
		return
	}
	from := c.Handle
	if caller, ok := h.registry.Lookup(cmd.Identity); ok {
		from = caller.Handle
	}
	h.send(target, &Event{
		Kind:        EventIncomingCall,
		Signal:      cmd.Signal,
		From:        from,
		DisplayName: cmd.Name,
	})
}

func (h *Hub) answerCall(cmd *Command) {
	target, ok := h.clients[cmd.To]
	if !ok {
		h.log.Debug().Str("to", cmd.To).Msg("call answer to unknown handle dropped")
		return
	}
	h.send(target, &Event{Kind: EventCallAccepted, Signal: cmd.Signal})
}

func (h *Hub) endCall(cmd *Command) {
	if cmd.To == "" {
		return
	}
	target, ok := h.clients[cmd.To]
	if !ok {
		return
	}
	h.send(target, &Event{Kind: EventCallEnded})
}

// send queues an event on one channel, dropping if the consumer is slow.
func (h *Hub) send(c *Client, event *Event) {
	select {
	case c.Events <- event:
	default:
		h.log.Debug().Str("handle", c.Handle).Msg("event dropped, slow consumer")
	}
}

// broadcast queues an event on every open channel.
func (h *Hub) broadcast(event *Event) {
	for _, c := range h.clients {
		h.send(c, event)
	}
}
