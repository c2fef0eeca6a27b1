// Package notemsg contains the message types for sharing note events between
// clients.
package notemsg

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hyphengolang/prelude/types/suid"
)

type (
	MsgType   int
	NoteState int

	Envelope struct {
		// Message identifier
		ID uuid.UUID `json:"id"`
		// NoteMsg | ConnectMsg
		Typ MsgType `json:"type"`
		// Client identifier
		UserID uuid.UUID `json:"userId"`
		// Actual message data.
		Payload json.RawMessage `json:"payload"`
	}

	NoteMsg struct {
		State NoteState `json:"state"`
		// Canonical note name, ex: "F4", "C♯4"
		Name string `json:"name"`
		// Physical key label that triggered the note, if any.
		Label string `json:"label,omitempty"`
	}

	ConnectMsg struct {
		UserID   uuid.UUID `json:"userId"`
		UserName string    `json:"userName"`
		// Session the client joined.
		Session suid.UUID `json:"session"`
	}
)

const (
	NOTE MsgType = iota
	CONNECT
)

const (
	NOTE_OFF NoteState = iota
	NOTE_ON
)

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	err := json.Unmarshal(data, &rawType)
	if err != nil {
		return err
	}

	switch rawType {
	case "note":
		*t = NOTE
	case "connect":
		*t = CONNECT
	default:
		return fmt.Errorf("unknown type: %s", rawType)
	}
	return nil
}

func (t *MsgType) MarshalJSON() ([]byte, error) {
	switch *t {
	case NOTE:
		return []byte(`"note"`), nil
	case CONNECT:
		return []byte(`"connect"`), nil
	}
	return []byte{}, fmt.Errorf("unknown MsgTyp value: %d", *t)
}
