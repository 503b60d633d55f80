package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

type createBreakoutsRequest struct {
	PlayerID     string `json:"playerId"`
	NumBreakouts int    `json:"numBreakouts"`
}

type joinBreakoutRequest struct {
	PlayerID       string `json:"playerId"`
	BreakoutRoomID string `json:"breakoutRoomId"`
}

func (h *Handlers) CreateBreakouts(c *gin.Context) {
	var req createBreakoutsRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidBreakoutCount)
		return
	}
	room, err := h.svc.CreateBreakouts(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID), req.NumBreakouts)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) DeleteBreakouts(c *gin.Context) {
	var req playerRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidPlayerID)
		return
	}
	room, err := h.svc.DeleteBreakouts(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) JoinBreakout(c *gin.Context) {
	var req joinBreakoutRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidPlayerID)
		return
	}
	room, err := h.svc.JoinBreakout(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID), req.BreakoutRoomID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) LeaveBreakout(c *gin.Context) {
	var req playerRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidPlayerID)
		return
	}
	room, err := h.svc.LeaveBreakout(c.Request.Context(), c.Param("code"), domain.PlayerID(req.PlayerID))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) SubmitBreakoutVote(c *gin.Context) {
	var req voteRequest
	if err := c.BindJSON(&req); err != nil {
		respondErr(c, domain.ErrInvalidCard)
		return
	}
	room, err := h.svc.VoteBreakout(c.Request.Context(), c.Param("code"), c.Param("bid"), domain.PlayerID(req.PlayerID), req.card())
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) RevealBreakout(c *gin.Context) {
	room, err := h.svc.RevealBreakout(c.Request.Context(), c.Param("code"), c.Param("bid"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}

func (h *Handlers) ResetBreakout(c *gin.Context) {
	room, err := h.svc.ResetBreakout(c.Request.Context(), c.Param("code"), c.Param("bid"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondRoom(c, http.StatusOK, room)
}
