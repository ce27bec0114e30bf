package signaling

import (
	"encoding/json"
	"sync"

	"lexhub/utils"

	"go.uber.org/zap"
)

// Hub is a room-keyed relay for WebRTC signaling and in-call chat. It
// forwards envelopes between the participants of a room without looking
// inside them.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

// NewHub creates an empty relay hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Client]bool)}
}

// Join registers a client in its room and announces it to the peers
// already present.
func (h *Hub) Join(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.RoomID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[client.RoomID] = room
	}
	room[client] = true
	h.mu.Unlock()

	utils.GetLogger().Info("Client joined signaling room",
		zap.String("roomID", client.RoomID), zap.String("userID", client.UserID))

	payload, _ := json.Marshal(presencePayload{UserID: client.UserID})
	h.Relay(client, Envelope{Type: TypeUserConnected, From: client.UserID, Payload: payload})
}

// Leave removes a client from its room, announces the departure and
// drops the room once empty.
func (h *Hub) Leave(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.RoomID]
	if ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, client.RoomID)
		}
	}
	h.mu.Unlock()
	if !ok {
		return
	}

	utils.GetLogger().Info("Client left signaling room",
		zap.String("roomID", client.RoomID), zap.String("userID", client.UserID))

	payload, _ := json.Marshal(presencePayload{UserID: client.UserID})
	h.Relay(client, Envelope{Type: TypeUserDisconnected, From: client.UserID, Payload: payload})
}

// Relay fans an envelope out to every other participant in the sender's
// room. Relaying into an empty or unknown room does nothing. Slow
// receivers are skipped rather than blocking the room.
func (h *Hub) Relay(sender *Client, env Envelope) {
	env.From = sender.UserID

	h.mu.RLock()
	room := h.rooms[sender.RoomID]
	peers := make([]*Client, 0, len(room))
	for peer := range room {
		if peer != sender {
			peers = append(peers, peer)
		}
	}
	h.mu.RUnlock()

	for _, peer := range peers {
		select {
		case peer.Send <- env:
		default:
			utils.GetLogger().Warn("Dropping message for slow signaling client",
				zap.String("roomID", sender.RoomID), zap.String("userID", peer.UserID))
		}
	}
}

// RoomSize reports the number of participants currently in a room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
