package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/glorpus-work/genhub/pkg/notify"
)

type uiCall struct {
	Method string
	Params []any
}

// recordingUI records every call made to a session's UI.
type recordingUI struct {
	mu    sync.Mutex
	calls []uiCall
}

func (u *recordingUI) Invoke(_ context.Context, method string, params []any) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls = append(u.calls, uiCall{Method: method, Params: params})
	return nil
}

// busyUpdates returns the updateBeingHandledGenerator calls only.
func (u *recordingUI) busyUpdates() [][]any {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out [][]any
	for _, c := range u.calls {
		if c.Method == MethodUpdateBeingHandledGenerator {
			out = append(out, c.Params)
		}
	}
	return out
}

// messages returns the text of every showMessage call.
func (u *recordingUI) messages() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []string
	for _, c := range u.calls {
		if c.Method == notify.MethodShowMessage {
			out = append(out, c.Params[0].(notify.Message).Message)
		}
	}
	return out
}

type recordingNotifier struct {
	mu     sync.Mutex
	status []string
	infos  []string
	errors []string
}

func (n *recordingNotifier) Status(msg string) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = append(n.status, msg)
	return func() {}
}

func (n *recordingNotifier) StatusFor(msg string, _ time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.status = append(n.status, msg)
}

func (n *recordingNotifier) Info(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

func (n *recordingNotifier) Infos() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.infos...)
}

func (n *recordingNotifier) Statuses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.status...)
}
