package signaling

import "encoding/json"

// Envelope is the wire format for every relay message. Payloads are
// forwarded as-is; the relay never inspects them.
type Envelope struct {
	Type    string          `json:"type"`
	From    string          `json:"from,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Relayed message types. Offer, answer, ice-candidate and chat-message
// are forwarded verbatim; the connection events are emitted by the hub.
const (
	TypeOffer        = "offer"
	TypeAnswer       = "answer"
	TypeICECandidate = "ice-candidate"
	TypeChatMessage  = "chat-message"

	TypeUserConnected    = "user-connected"
	TypeUserDisconnected = "user-disconnected"
)

// presencePayload announces a participant joining or leaving a room.
type presencePayload struct {
	UserID string `json:"userId"`
}
