package server

import (
	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/room"
)

// Wire types for the bulletin-board API. Integers are decimal strings and
// blobs stay opaque; the server never parses a ciphertext.

type CreateRoomRequest struct {
	Params           *group.Parameters `json:"params" binding:"required"`
	SessionPublicKey string            `json:"sessionPublicKey" binding:"required"`
	ChairTokenHash   string            `json:"chairTokenHash" binding:"required"`
}

type CreateRoomResponse struct {
	RoomID string `json:"roomId"`
}

type RoomResponse struct {
	ID               string            `json:"id"`
	Status           room.Status       `json:"status"`
	Params           *group.Parameters `json:"params"`
	SessionPublicKey string            `json:"sessionPublicKey"`
	ParticipantCount int               `json:"participantCount"`
	SortedKeys       []string          `json:"sortedKeys"`
	Messages         []string          `json:"messages"`
}

type RegisterRequest struct {
	EncryptedKey string `json:"encryptedKey" binding:"required"`
}

type SortRequest struct {
	SortedKeys []string `json:"sortedKeys" binding:"required"`
}

type MessageRequest struct {
	Blob string `json:"blob" binding:"required"`
}

type ParticipantsResponse struct {
	Participants []string `json:"participants"`
}

type MessagesResponse struct {
	Messages []string `json:"messages"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
