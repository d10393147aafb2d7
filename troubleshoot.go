package autocortext

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
)

// Troubleshoot sends a conversation to AutoCortext and returns the
// messages it replies with.
//
// The conversation must be non-empty and every message must carry a
// valid role and non-empty content; otherwise a [ValidationError] is
// returned before any network traffic happens. Message order is
// preserved exactly in the payload sent to the transport.
//
// Any failure of the remote call surfaces as an [APIError]; no partial
// conversation is ever returned alongside an error.
//
// Example:
//
//	reply, err := client.Troubleshoot(ctx, autocortext.Conversation{
//	    {ID: 1, Role: autocortext.RoleUser, Content: "The press keeps jamming."},
//	})
func (c *Client) Troubleshoot(ctx context.Context, conv Conversation) (Conversation, error) {
	raw, err := c.send(ctx, conv)
	if err != nil {
		return nil, err
	}

	reply, err := parseConversation(raw)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// TroubleshootRaw is [Client.Troubleshoot] without response parsing: it
// returns the response body text exactly as the server sent it.
//
// It exists for callers migrating from clients that exposed the raw
// response; new code should prefer [Client.Troubleshoot].
func (c *Client) TroubleshootRaw(ctx context.Context, conv Conversation) (string, error) {
	raw, err := c.send(ctx, conv)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Client) send(ctx context.Context, conv Conversation) ([]byte, error) {
	if err := conv.Validate(strfmt.Default); err != nil {
		if len(conv) == 0 {
			return nil, &ValidationError{Reason: "conversation is empty", Cause: err}
		}
		return nil, &ValidationError{Reason: "malformed message", Cause: err}
	}

	payload, err := swag.WriteJSON(conv)
	if err != nil {
		return nil, &ValidationError{Reason: "cannot serialize conversation", Cause: err}
	}

	c.logger.Debug("troubleshoot request", "messages", len(conv))

	raw, err := c.transport.Send(ctx, TroubleshootEndpoint, payload, c.creds)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, err
		}
		return nil, &APIError{Message: "transport failed", Cause: err}
	}
	return raw, nil
}

// parseConversation normalizes a response body to a parsed conversation.
//
// The server is known to answer in two shapes: a JSON array of messages,
// or a JSON string whose contents are such an array. Both are accepted;
// callers always see the parsed form.
func parseConversation(raw []byte) (Conversation, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil, &APIError{Message: "empty response body"}
	}

	if body[0] == '"' {
		var inner string
		if err := json.Unmarshal(body, &inner); err != nil {
			return nil, &APIError{Message: "malformed response body", Cause: err}
		}
		body = []byte(inner)
	}

	var reply Conversation
	if err := swag.ReadJSON(body, &reply); err != nil {
		return nil, &APIError{Message: "malformed response body", Cause: err}
	}
	return reply, nil
}
