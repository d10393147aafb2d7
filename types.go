package autocortext

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// Role identifies the author of a [Message].
type Role string

// Valid roles.
const (
	// RoleAssistant marks a message written by AutoCortext.
	RoleAssistant Role = "assistant"

	// RoleUser marks a message written by the end user.
	RoleUser Role = "user"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	return r == RoleAssistant || r == RoleUser
}

var rolesEnum = []any{string(RoleAssistant), string(RoleUser)}

// Message is a single chat message in a troubleshooting conversation.
//
// Example wire form:
//
//	{"id": 2, "content": "Why won't the motor start?", "role": "user"}
type Message struct {
	// ID identifies the message within its conversation.
	//
	// IDs are advisory: the server may assign new IDs to the messages
	// it returns, so callers must not assume replies continue their
	// own numbering.
	ID int64 `json:"id"`

	// Content is the message text. Required, non-empty.
	Content string `json:"content"`

	// Role is the message author. Required, one of [RoleAssistant]
	// or [RoleUser].
	Role Role `json:"role"`
}

// Validate validates this message against the AutoCortext message schema.
func (m *Message) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.RequiredString("content", "body", m.Content); err != nil {
		res = append(res, err)
	}

	if err := validate.RequiredString("role", "body", string(m.Role)); err != nil {
		res = append(res, err)
	} else if err := validate.Enum("role", "body", string(m.Role), rolesEnum); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// MarshalBinary interface implementation.
func (m *Message) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation.
func (m *Message) UnmarshalBinary(b []byte) error {
	var res Message
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}

// Conversation is an ordered sequence of messages. Insertion order is
// conversation order and is preserved on the wire.
type Conversation []Message

// Validate validates every message in the conversation. The conversation
// must be non-empty.
func (c Conversation) Validate(formats strfmt.Registry) error {
	if len(c) == 0 {
		return errors.Required("conversation", "body", nil)
	}

	var res []error
	for i := range c {
		if err := c[i].Validate(formats); err != nil {
			res = append(res, err)
		}
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// Last returns the final message of the conversation, typically the
// assistant's reply, and false when the conversation is empty.
func (c Conversation) Last() (Message, bool) {
	if len(c) == 0 {
		return Message{}, false
	}
	return c[len(c)-1], true
}
