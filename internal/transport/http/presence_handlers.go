package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/signalhub/internal/core"
	"github.com/vovakirdan/signalhub/internal/proto"
)

// PresenceHandlers serves the derived presence projections over REST.
// Both endpoints recompute from authoritative hub state on every call.
type PresenceHandlers struct {
	hub *core.Hub
	log *zerolog.Logger
}

// NewPresenceHandlers creates the presence handlers instance.
func NewPresenceHandlers(hub *core.Hub, logger *zerolog.Logger) *PresenceHandlers {
	return &PresenceHandlers{hub: hub, log: logger}
}

// OnlineUsers returns the identity -> handle mapping of online users.
// GET /api/users
func (h *PresenceHandlers) OnlineUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.hub.OnlineUsers())
}

// AvailableRooms returns the live-room list with participant counts.
// GET /api/rooms
func (h *PresenceHandlers) AvailableRooms(c *gin.Context) {
	rooms := h.hub.AvailableRooms()
	response := make([]proto.RoomSummaryData, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, proto.RoomSummaryData{
			ID:               room.ID,
			Name:             room.Name,
			ParticipantCount: room.ParticipantCount,
		})
	}
	c.JSON(http.StatusOK, response)
}
