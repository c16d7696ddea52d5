package server

import (
	"errors"
	"net/http"

	"github.com/cryptosanta/cryptosanta/pkg/room"
	"github.com/gin-gonic/gin"
)

// chairSecretHeader authenticates the chair on privileged routes. The
// secret itself never reaches disk; the store holds only its digest.
const chairSecretHeader = "X-Chair-Secret"

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func abortWith(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Detail: err.Error()})
}

func createRoomHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
			return
		}
		id := store.Create(&room.Room{
			Params:           req.Params,
			SessionPublicKey: req.SessionPublicKey,
			ChairTokenHash:   req.ChairTokenHash,
		})
		c.JSON(http.StatusOK, CreateRoomResponse{RoomID: id})
	}
}

func getRoomHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := store.Get(c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, RoomResponse{
			ID:               r.ID,
			Status:           r.Status,
			Params:           r.Params,
			SessionPublicKey: r.SessionPublicKey,
			ParticipantCount: len(r.Participants),
			SortedKeys:       r.SortedKeys,
			Messages:         r.Messages,
		})
	}
}

func registerHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
			return
		}
		if err := store.AddParticipant(c.Param("id"), req.EncryptedKey); err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func participantsHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := store.Get(c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, ParticipantsResponse{Participants: r.Participants})
	}
}

func sortHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := store.Get(c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		if !r.VerifyChairToken(c.GetHeader(chairSecretHeader)) {
			c.JSON(http.StatusForbidden, ErrorResponse{Detail: "invalid chair secret"})
			return
		}
		var req SortRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
			return
		}
		if err := store.SetSortedKeys(c.Param("id"), req.SortedKeys); err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func messageHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
			return
		}
		if err := store.AddMessage(c.Param("id"), req.Blob); err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func messagesHandler(store *room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := store.Get(c.Param("id"))
		if err != nil {
			abortWith(c, err)
			return
		}
		c.JSON(http.StatusOK, MessagesResponse{Messages: r.Messages})
	}
}

func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
