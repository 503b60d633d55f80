package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Apurva9997/planning-poker/internal/domain"
	"github.com/Apurva9997/planning-poker/internal/engine"
)

// standardResponse keeps every endpoint on the same JSON envelope.
func standardResponse(c *gin.Context, code int, status string, data any, errMsg string) {
	response := gin.H{"status": status}
	if data != nil {
		response["data"] = data
	}
	if errMsg != "" {
		response["error"] = errMsg
	}
	c.JSON(code, response)
}

func respondErr(c *gin.Context, err error) {
	standardResponse(c, httpStatus(err), "error", nil, err.Error())
}

func respondRoom(c *gin.Context, code int, room *domain.Room) {
	standardResponse(c, code, "ok", gin.H{"room": room}, "")
}

// httpStatus maps the engine's error taxonomy onto status codes. Storage
// trouble is a bad gateway: the command may be retried, a rejection may
// not.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStorage):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type joinRequest struct {
	Name     string `json:"name"`
	PlayerID string `json:"playerId"`
	Observer bool   `json:"observer"`
}

type voteRequest struct {
	PlayerID string  `json:"playerId"`
	Vote     *string `json:"vote"`
}

func (r voteRequest) card() domain.Card {
	if r.Vote == nil {
		return domain.NoVote
	}
	return domain.Card(*r.Vote)
}

type playerRequest struct {
	PlayerID string `json:"playerId"`
}

// bearerToken extracts the optional admin token from the Authorization
// header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

func (h *Handlers) CreateRoom(c *gin.Context) {
	var req joinRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidName)
		return
	}

	adminUID := ""
	if identity := h.verifier.VerifyAdmin(bearerToken(c)); identity != nil && identity.IsAdmin {
		adminUID = identity.UID
	}

	room, err := h.svc.Create(c.Request.Context(), req.Name, domain.PlayerID(req.PlayerID), req.Observer, adminUID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusCreated, room)
}

func (h *Handlers) JoinRoom(c *gin.Context) {
	var req joinRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidName)
		return
	}
	room, err := h.svc.Join(c.Request.Context(), c.Param("code"), req.Name, domain.PlayerID(req.PlayerID), req.Observer)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) GetRoom(c *gin.Context) {
	room, err := h.svc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) SubmitVote(c *gin.Context) {
	var req voteRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidCard)
		return
	}
	room, err := h.svc.Vote(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID), req.card())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

// RevealVotes turns the round face-up and attaches round statistics.
func (h *Handlers) RevealVotes(c *gin.Context) {
	room, err := h.svc.Reveal(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}
	standardResponse(c, http.StatusOK, "ok", gin.H{
		"room":  room,
		"stats": engine.VoteStatistics(room.Players),
	}, "")
}

func (h *Handlers) ResetRound(c *gin.Context) {
	room, err := h.svc.Reset(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) LeaveRoom(c *gin.Context) {
	var req playerRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidPlayerID)
		return
	}
	if err := h.svc.Leave(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID)); err != nil {
		respondErr(c, err)
		return
	}
	standardResponse(c, http.StatusOK, "ok", nil, "")
}
