package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/kachuful-backend/internal/entity"
	"github.com/rocketscienceinc/kachuful-backend/internal/render"
)

const actionState = "state"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newStateMessage(snapshot entity.Snapshot) ([]byte, error) {
	payload, err := json.Marshal(render.Build(snapshot))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal view: %w", err)
	}

	message, err := json.Marshal(Message{Action: actionState, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return message, nil
}
