package autocortext_test

import (
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocortext/autocortext-go"
)

// TestRole_Valid covers the role enumeration.
func TestRole_Valid(t *testing.T) {
	assert.True(t, autocortext.RoleAssistant.Valid())
	assert.True(t, autocortext.RoleUser.Valid())
	assert.False(t, autocortext.Role("system").Valid())
	assert.False(t, autocortext.Role("").Valid())
	assert.False(t, autocortext.Role("Assistant").Valid(), "roles are case sensitive")
}

// TestMessage_Validate covers per-message validation.
func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		message autocortext.Message
		wantErr bool
	}{
		{
			name:    "valid user message",
			message: autocortext.Message{ID: 1, Content: "hi", Role: autocortext.RoleUser},
		},
		{
			name:    "valid assistant message",
			message: autocortext.Message{ID: 2, Content: "hello", Role: autocortext.RoleAssistant},
		},
		{
			name:    "zero id is advisory and allowed",
			message: autocortext.Message{Content: "hi", Role: autocortext.RoleUser},
		},
		{
			name:    "empty content",
			message: autocortext.Message{ID: 1, Role: autocortext.RoleUser},
			wantErr: true,
		},
		{
			name:    "unknown role",
			message: autocortext.Message{ID: 1, Content: "hi", Role: "system"},
			wantErr: true,
		},
		{
			name:    "missing role",
			message: autocortext.Message{ID: 1, Content: "hi"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate(strfmt.Default)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestConversation_Validate verifies that conversation validation
// rejects emptiness and reports every bad message.
func TestConversation_Validate(t *testing.T) {
	t.Run("empty conversation", func(t *testing.T) {
		err := autocortext.Conversation{}.Validate(strfmt.Default)
		assert.Error(t, err)
	})

	t.Run("valid conversation", func(t *testing.T) {
		conv := autocortext.Conversation{
			{ID: 1, Content: "How can I help you?", Role: autocortext.RoleAssistant},
			{ID: 2, Content: "Why is the sky blue?", Role: autocortext.RoleUser},
		}
		assert.NoError(t, conv.Validate(strfmt.Default))
	})

	t.Run("one bad message fails the conversation", func(t *testing.T) {
		conv := autocortext.Conversation{
			{ID: 1, Content: "fine", Role: autocortext.RoleUser},
			{ID: 2, Content: "", Role: autocortext.RoleAssistant},
		}
		assert.Error(t, conv.Validate(strfmt.Default))
	})
}

// TestMessage_BinaryRoundTrip verifies the wire field names and the
// MarshalBinary/UnmarshalBinary pair.
func TestMessage_BinaryRoundTrip(t *testing.T) {
	msg := autocortext.Message{ID: 7, Content: "check the fuse", Role: autocortext.RoleAssistant}

	b, err := msg.MarshalBinary()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"content":"check the fuse","role":"assistant"}`, string(b))

	var decoded autocortext.Message
	require.NoError(t, decoded.UnmarshalBinary(b))
	assert.Equal(t, msg, decoded)
}

// TestConversation_Last covers the reply-accessor helper.
func TestConversation_Last(t *testing.T) {
	conv := autocortext.Conversation{
		{ID: 1, Content: "first", Role: autocortext.RoleUser},
		{ID: 2, Content: "second", Role: autocortext.RoleAssistant},
	}

	last, ok := conv.Last()
	assert.True(t, ok)
	assert.Equal(t, "second", last.Content)

	_, ok = autocortext.Conversation{}.Last()
	assert.False(t, ok)
}
