package notemsg_test

import (
	"encoding/json"
	"testing"

	"github.com/rapidmidiex/pianotui/notemsg"
	"github.com/stretchr/testify/require"
)

func TestMsgTypeMarshaling(t *testing.T) {
	t.Run("unmarshals type from JSON", func(t *testing.T) {
		message := []byte(`{
    "id": "7b0f33ba-8a50-446d-aaa4-4de4aa96fc6c",
    "type": "note",
    "payload": {
        "state": 1,
        "name": "F4",
        "label": "g"
    },
    "userId": null
}`)

		var got notemsg.Envelope
		err := json.Unmarshal(message, &got)
		require.NoError(t, err)

		require.Equal(t, got.Typ, notemsg.NOTE)
	})

	t.Run("marshals type to JSON", func(t *testing.T) {
		message := notemsg.Envelope{
			Typ: notemsg.NOTE,
		}

		got, err := json.Marshal(&message)
		require.NoError(t, err)
		want := `"type":"note"`
		require.Containsf(t, string(got), want, "JSON does not contain [ %s ]\n%s", want, string(got))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		var got notemsg.Envelope
		err := json.Unmarshal([]byte(`{"type": "chord"}`), &got)
		require.Error(t, err)
	})
}

func TestPayloadRoundTrip(t *testing.T) {
	envelope := notemsg.Envelope{Typ: notemsg.NOTE}
	err := envelope.SetPayload(notemsg.NoteMsg{
		State: notemsg.NOTE_ON,
		Name:  "C♯4",
		Label: "S",
	})
	require.NoError(t, err)

	var got notemsg.NoteMsg
	require.NoError(t, envelope.Unwrap(&got))
	require.Equal(t, notemsg.NOTE_ON, got.State)
	require.Equal(t, "C♯4", got.Name)
	require.Equal(t, "S", got.Label)
}
