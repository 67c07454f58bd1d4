package notify

import (
	"context"
	"time"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/google/uuid"
)

// Remote methods a UI implements to display notifications.
const (
	MethodShowMessage = "showMessage"
	MethodHideMessage = "hideMessage"
)

// Peer invokes methods on the far side of an RPC connection.
type Peer interface {
	Invoke(ctx context.Context, method string, params []any) error
}

// Remote sends notifications to a UI over its RPC connection. Delivery is
// fire-and-forget: a failed call is logged and otherwise ignored.
type Remote struct {
	peer Peer
}

// NewRemote creates a notifier for peer.
func NewRemote(peer Peer) *Remote {
	return &Remote{peer: peer}
}

func (r *Remote) send(method string, param any) {
	if err := r.peer.Invoke(context.Background(), method, []any{param}); err != nil {
		logger.Debug("failed to deliver notification", logger.Fields{
			"method": method,
			"error":  err.Error(),
		})
	}
}

// Status shows msg on the UI until dismissed.
func (r *Remote) Status(msg string) func() {
	id := uuid.NewString()
	r.send(MethodShowMessage, Message{ID: id, Level: LevelStatus, Message: msg})
	return func() { r.send(MethodHideMessage, id) }
}

// StatusFor shows msg on the UI; the UI hides it after d.
func (r *Remote) StatusFor(msg string, d time.Duration) {
	r.send(MethodShowMessage, Message{ID: uuid.NewString(), Level: LevelStatus, Message: msg, TimeoutMs: d.Milliseconds()})
}

func (r *Remote) Info(msg string) {
	r.send(MethodShowMessage, Message{Level: LevelInfo, Message: msg})
}

func (r *Remote) Error(msg string) {
	r.send(MethodShowMessage, Message{Level: LevelError, Message: msg})
}
