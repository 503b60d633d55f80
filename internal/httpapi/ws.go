package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func newPingTicker(period time.Duration) *time.Ticker {
	if period <= 0 {
		period = 15 * time.Second
	}
	return time.NewTicker(period)
}

type streamMessage struct {
	Type string       `json:"type"`
	Room *domain.Room `json:"room,omitempty"`
}

// StreamRoom upgrades to a websocket and pushes the full room state after
// every successful mutation. Polling clients coexist: a dropped socket
// does not remove the player, leaving stays an explicit command.
func (h *Handlers) StreamRoom(c *gin.Context) {
	room, err := h.svc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Str("module", "httpapi").Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events := h.hub.Subscribe(room.Code)
	defer h.hub.Unsubscribe(room.Code, events)

	if err := conn.WriteJSON(streamMessage{Type: "state", Room: room}); err != nil {
		return
	}

	ticker := newPingTicker(h.pingPeriod)
	defer ticker.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case state, ok := <-events:
			if !ok {
				return
			}
			if state == nil {
				conn.WriteJSON(streamMessage{Type: "deleted"})
				return
			}
			if err := conn.WriteJSON(streamMessage{Type: "state", Room: state}); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
