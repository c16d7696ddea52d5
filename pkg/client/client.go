// Package client is the participant- and chair-side view of the bulletin
// board. It speaks the board's JSON wire format: decimal strings for
// integers, opaque strings for blobs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cryptosanta/cryptosanta/pkg/group"
	"github.com/cryptosanta/cryptosanta/pkg/room"
)

const chairSecretHeader = "X-Chair-Secret"

// Client talks to one bulletin board.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the board at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// RoomView is the public state of a room as served by the board.
type RoomView struct {
	ID               string            `json:"id"`
	Status           room.Status       `json:"status"`
	Params           *group.Parameters `json:"params"`
	SessionPublicKey string            `json:"sessionPublicKey"`
	ParticipantCount int               `json:"participantCount"`
	SortedKeys       []string          `json:"sortedKeys"`
	Messages         []string          `json:"messages"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path, chairSecret string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if chairSecret != "" {
		req.Header.Set(chairSecretHeader, chairSecret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Detail != "" {
			return fmt.Errorf("client: %s %s: %s (status %d)", method, path, e.Detail, resp.StatusCode)
		}
		return fmt.Errorf("client: %s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}

// CreateRoom registers a new room and returns its id. The chair keeps the
// token; only its digest travels.
func (c *Client) CreateRoom(ctx context.Context, params *group.Parameters, sessionPublicKey, chairToken string) (string, error) {
	req := struct {
		Params           *group.Parameters `json:"params"`
		SessionPublicKey string            `json:"sessionPublicKey"`
		ChairTokenHash   string            `json:"chairTokenHash"`
	}{params, sessionPublicKey, room.HashChairToken(chairToken)}
	var resp struct {
		RoomID string `json:"roomId"`
	}
	if err := c.do(ctx, http.MethodPost, "/room", "", req, &resp); err != nil {
		return "", err
	}
	return resp.RoomID, nil
}

// Room fetches the public room state.
func (c *Client) Room(ctx context.Context, roomID string) (*RoomView, error) {
	view := &RoomView{}
	if err := c.do(ctx, http.MethodGet, "/room/"+roomID, "", nil, view); err != nil {
		return nil, err
	}
	return view, nil
}

// Register posts an encrypted public-key blob.
func (c *Client) Register(ctx context.Context, roomID, encryptedKey string) error {
	req := struct {
		EncryptedKey string `json:"encryptedKey"`
	}{encryptedKey}
	return c.do(ctx, http.MethodPost, "/room/"+roomID+"/register", "", req, nil)
}

// Participants fetches all encrypted registration blobs (chair flow).
func (c *Client) Participants(ctx context.Context, roomID string) ([]string, error) {
	var resp struct {
		Participants []string `json:"participants"`
	}
	if err := c.do(ctx, http.MethodGet, "/room/"+roomID+"/participants", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Participants, nil
}

// PublishSortedKeys uploads the chair's sorted list.
func (c *Client) PublishSortedKeys(ctx context.Context, roomID, chairToken string, sortedKeys []string) error {
	req := struct {
		SortedKeys []string `json:"sortedKeys"`
	}{sortedKeys}
	return c.do(ctx, http.MethodPost, "/room/"+roomID+"/sort", chairToken, req, nil)
}

// PostMessage stores an encrypted address blob.
func (c *Client) PostMessage(ctx context.Context, roomID, blob string) error {
	req := struct {
		Blob string `json:"blob"`
	}{blob}
	return c.do(ctx, http.MethodPost, "/room/"+roomID+"/message", "", req, nil)
}

// Messages fetches every stored message blob for scanning.
func (c *Client) Messages(ctx context.Context, roomID string) ([]string, error) {
	var resp struct {
		Messages []string `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/room/"+roomID+"/messages", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}
