package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reinaldo-Kn/pifatro/internal/protocol"
)

func TestNewMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msgType protocol.MessageType
		payload any
	}{
		{
			name:    "nil payload",
			msgType: protocol.MsgDraw,
			payload: nil,
		},
		{
			name:    "with ReplacePayload",
			msgType: protocol.MsgReplace,
			payload: protocol.ReplacePayload{Index: 4},
		},
		{
			name:    "with LoginPayload",
			msgType: protocol.MsgLogin,
			payload: protocol.LoginPayload{Username: "reinaldo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg, err := NewMessage(tt.msgType, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.msgType, msg.Type)
			if tt.payload == nil {
				assert.Empty(t, msg.Payload)
			} else {
				assert.NotEmpty(t, msg.Payload)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	original := MustNewMessage(protocol.MsgReplace, protocol.ReplacePayload{Index: 7})

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original.Type, decoded.Type)

	payload, err := ParsePayload[protocol.ReplacePayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, 7, payload.Index)
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestParsePayloadEmpty(t *testing.T) {
	t.Parallel()

	msg := &protocol.Message{Type: protocol.MsgDraw}
	payload, err := ParsePayload[protocol.ReplacePayload](msg)
	require.NoError(t, err)
	assert.Equal(t, 0, payload.Index)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(protocol.ErrCodeNotLoggedIn)
	assert.Equal(t, protocol.MsgError, msg.Type)

	payload, err := ParsePayload[protocol.ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrCodeNotLoggedIn, payload.Code)
	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeNotLoggedIn], payload.Message)

	custom := NewErrorMessageWithText(protocol.ErrCodeStoreFailed, "redis timeout")
	payload, err = ParsePayload[protocol.ErrorPayload](custom)
	require.NoError(t, err)
	assert.Equal(t, "redis timeout", payload.Message)
}
