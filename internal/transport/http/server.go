package http

import (
	stdhttp "net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/signalhub/internal/config"
	"github.com/vovakirdan/signalhub/internal/core"
)

// NewServer builds the HTTP server: health probe, WebSocket upgrade,
// and the read-only presence API. CORS is wide open; the relay serves
// browser clients on arbitrary origins.
func NewServer(hub *core.Hub, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	router.GET("/health", healthHandler)

	presence := NewPresenceHandlers(hub, logger)
	api := router.Group("/api")
	api.GET("/users", presence.OnlineUsers)
	api.GET("/rooms", presence.AvailableRooms)

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.EventQueueSize, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
