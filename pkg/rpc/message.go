// Package rpc is a symmetric JSON remote-procedure channel over a websocket. Either
// side registers methods and calls the other's.
package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/glorpus-work/genhub/pkg/errors"
)

// Message is one frame on the wire. A frame with a method is a request; a frame
// without one is the response to the request with the same id.
type Message struct {
	ID     string          `json:"id"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// IsRequest reports whether the message calls a method.
func (m *Message) IsRequest() bool {
	return m.Method != ""
}

// Error is a failure reported by the remote side.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Params are the positional arguments of a request.
type Params []json.RawMessage

func parseParams(raw json.RawMessage) (Params, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Params{}, nil
	}
	var p Params
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: params must be an array: %w", errors.ErrInvalidParams, err)
	}
	return p, nil
}

// Len returns the number of arguments sent.
func (p Params) Len() int {
	return len(p)
}

// Decode unmarshals argument i into v. A missing or null argument leaves v unchanged,
// so callers preset defaults.
func (p Params) Decode(i int, v any) error {
	if i >= len(p) || string(p[i]) == "null" {
		return nil
	}
	if err := json.Unmarshal(p[i], v); err != nil {
		return fmt.Errorf("%w: argument %d: %w", errors.ErrInvalidParams, i, err)
	}
	return nil
}
