// Package emit publishes local note taps to a jam endpoint over a websocket
// and surfaces remote note events back into the update loop.
package emit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hyphengolang/prelude/types/suid"

	"github.com/rapidmidiex/pianotui/notemsg"
	"github.com/rapidmidiex/pianotui/pianoerr"
)

type (
	// ConnectedMsg reports a freshly dialed socket.
	ConnectedMsg struct {
		WS *websocket.Conn
	}

	// JoinedMsg reports a client (possibly ourselves) joining the session.
	JoinedMsg struct {
		UserID   uuid.UUID
		UserName string
		Session  suid.UUID
	}

	// RemoteNoteMsg is a note event played by another client.
	RemoteNoteMsg struct {
		Name  string
		Label string
		On    bool
	}

	sentMsg struct {
		id     uuid.UUID
		sentAt time.Time
	}

	// LeftMsg reports that the connection was closed on request.
	LeftMsg struct{}
)

// Emitter wraps the socket for one session. All sends and reads run inside
// tea commands, so the model stays single-threaded.
type Emitter struct {
	ws     *websocket.Conn
	userID uuid.UUID
}

func New(ws *websocket.Conn, userID uuid.UUID) *Emitter {
	return &Emitter{ws: ws, userID: userID}
}

// Dial connects to the jam endpoint.
func Dial(wsURL string) tea.Cmd {
	return func() tea.Msg {
		ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			return pianoerr.ErrMsg{Err: fmt.Errorf("dial: %v\n%w", wsURL, err)}
		}
		return ConnectedMsg{WS: ws}
	}
}

// Announce introduces this client to the session after a successful dial.
func (e *Emitter) Announce(userName string) tea.Cmd {
	return func() tea.Msg {
		envelope := notemsg.Envelope{
			ID:     uuid.New(),
			Typ:    notemsg.CONNECT,
			UserID: e.userID,
		}
		err := envelope.SetPayload(notemsg.ConnectMsg{UserID: e.userID, UserName: userName})
		if err != nil {
			return pianoerr.ErrMsg{Err: fmt.Errorf("marshal: %w", err)}
		}
		if err := e.ws.WriteJSON(&envelope); err != nil {
			return pianoerr.ErrMsg{Err: fmt.Errorf("writeJSON: %w", err)}
		}
		return sentMsg{id: envelope.ID, sentAt: time.Now()}
	}
}

// SendNote publishes a local tap.
func (e *Emitter) SendNote(name, label string, on bool) tea.Cmd {
	return func() tea.Msg {
		state := notemsg.NOTE_OFF
		if on {
			state = notemsg.NOTE_ON
		}
		envelope := notemsg.Envelope{
			ID:     uuid.New(),
			Typ:    notemsg.NOTE,
			UserID: e.userID,
		}
		err := envelope.SetPayload(notemsg.NoteMsg{State: state, Name: name, Label: label})
		if err != nil {
			return pianoerr.ErrMsg{Err: fmt.Errorf("marshal: %w", err)}
		}
		if err := e.ws.WriteJSON(&envelope); err != nil {
			return pianoerr.ErrMsg{Err: fmt.Errorf("writeJSON: %w", err)}
		}
		return sentMsg{id: envelope.ID, sentAt: time.Now()}
	}
}

// Listen reads the next message from the socket. The caller re-arms it after
// every received message.
// https://github.com/charmbracelet/bubbletea/issues/25#issuecomment-732339162
func (e *Emitter) Listen() tea.Cmd {
	return func() tea.Msg {
		var message notemsg.Envelope
		err := e.ws.ReadJSON(&message)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				return pianoerr.ErrMsg{Err: fmt.Errorf("readJSON: unexpected close: %w", err)}
			}
			return pianoerr.ErrMsg{Err: fmt.Errorf("readJSON: %w", err)}
		}

		switch message.Typ {
		case notemsg.NOTE:
			var noteMsg notemsg.NoteMsg
			if err := message.Unwrap(&noteMsg); err != nil {
				return pianoerr.ErrMsg{Err: fmt.Errorf("unmarshal NoteMsg: %+v\n%w", message, err)}
			}
			return RemoteNoteMsg{
				Name:  noteMsg.Name,
				Label: noteMsg.Label,
				On:    noteMsg.State == notemsg.NOTE_ON,
			}

		case notemsg.CONNECT:
			var conMsg notemsg.ConnectMsg
			if err := message.Unwrap(&conMsg); err != nil {
				return pianoerr.ErrMsg{Err: fmt.Errorf("unmarshal ConnectMsg: %+v\n%w", message, err)}
			}
			return JoinedMsg{
				UserID:   conMsg.UserID,
				UserName: conMsg.UserName,
				Session:  conMsg.Session,
			}
		default:
			return pianoerr.ErrMsg{Err: fmt.Errorf("unknown message type: %+v", message)}
		}
	}
}

// Leave closes the connection and reports completion.
func (e *Emitter) Leave() tea.Cmd {
	return func() tea.Msg {
		if e == nil || e.ws == nil {
			return LeftMsg{}
		}
		err := e.ws.WriteControl(
			websocket.CloseMessage,
			nil,
			time.Now().Add(time.Second*10),
		)
		if err != nil {
			return pianoerr.ErrMsg{Err: err}
		}
		return LeftMsg{}
	}
}
