// Package httpapi exposes the room commands over HTTP and streams state
// updates over websockets. It owns the mapping from the engine's error
// taxonomy to status codes; no room logic lives here.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Apurva9997/planning-poker/internal/auth"
	"github.com/Apurva9997/planning-poker/internal/config"
	"github.com/Apurva9997/planning-poker/internal/notify"
	"github.com/Apurva9997/planning-poker/internal/service"
)

type Handlers struct {
	svc        *service.Service
	hub        *notify.Hub
	verifier   *auth.Verifier
	pingPeriod time.Duration
}

func NewHandlers(svc *service.Service, hub *notify.Hub, verifier *auth.Verifier, pingPeriod time.Duration) *Handlers {
	return &Handlers{svc: svc, hub: hub, verifier: verifier, pingPeriod: pingPeriod}
}

func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(mutationRateLimit())
	{
		api.POST("/rooms", h.CreateRoom)

		rooms := api.Group("/rooms/:code")
		{
			rooms.GET("", h.GetRoom)
			rooms.POST("/join", h.JoinRoom)
			rooms.POST("/vote", h.SubmitVote)
			rooms.POST("/reveal", h.RevealVotes)
			rooms.POST("/reset", h.ResetRound)
			rooms.POST("/leave", h.LeaveRoom)

			rooms.POST("/breakouts", h.CreateBreakouts)
			rooms.DELETE("/breakouts", h.DeleteBreakouts)
			rooms.POST("/breakouts/join", h.JoinBreakout)
			rooms.POST("/breakouts/leave", h.LeaveBreakout)

			// Single-breakout commands live under /breakout/:bid; gin's
			// router cannot mix a :bid segment with the static join/leave
			// siblings above.
			rooms.POST("/breakout/:bid/vote", h.SubmitBreakoutVote)
			rooms.POST("/breakout/:bid/reveal", h.RevealBreakout)
			rooms.POST("/breakout/:bid/reset", h.ResetBreakout)

			rooms.GET("/ws", h.StreamRoom)
		}
	}

	return r
}
