package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, s)
}

func (r *recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) Status(msg string) func() {
	r.add("status:" + msg)
	return func() { r.add("dismiss:" + msg) }
}
func (r *recorder) StatusFor(msg string, _ time.Duration) { r.add("statusfor:" + msg) }
func (r *recorder) Info(msg string)                       { r.add("info:" + msg) }
func (r *recorder) Error(msg string)                      { r.add("error:" + msg) }

type call struct {
	method string
	params []any
}

type fakePeer struct {
	mu    sync.Mutex
	calls []call
	err   error
}

func (p *fakePeer) Invoke(_ context.Context, method string, params []any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call{method, params})
	return p.err
}

func TestConsole_NonInteractive(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)

	dismiss := c.Status("Installing the latest version of generator-foo ...")
	c.Info("generator-foo successfully installed.")
	c.Error("Failed to install generator-bar: boom")
	dismiss()
	dismiss()

	assert.Equal(t, "Installing the latest version of generator-foo ...\n"+
		"generator-foo successfully installed.\n"+
		"Failed to install generator-bar: boom\n", buf.String())
}

func TestConsole_DisableColor(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)
	c.DisableColor()
	c.Error("Failed to uninstall generator-foo: boom")
	assert.Equal(t, "Failed to uninstall generator-foo: boom\n", buf.String())
}

func TestConsole_StatusFor(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewConsole(buf)
	c.StatusFor("Finished auto updating of installed generators.", time.Millisecond)
	assert.Contains(t, buf.String(), "Finished auto updating of installed generators.")
}

func TestHub(t *testing.T) {
	base := &recorder{}
	a := &recorder{}
	b := &recorder{}
	hub := NewHub(base)

	detachA := hub.Attach(a)
	detachB := hub.Attach(b)

	dismiss := hub.Status("working")
	hub.Info("hello")
	detachA()
	hub.Error("oops")
	dismiss()
	detachB()
	hub.StatusFor("later", time.Second)

	assert.Equal(t, []string{"status:working", "info:hello", "error:oops", "dismiss:working", "statusfor:later"}, base.Events())
	assert.Equal(t, []string{"status:working", "info:hello", "dismiss:working"}, a.Events())
	assert.Equal(t, []string{"status:working", "info:hello", "error:oops", "dismiss:working"}, b.Events())
}

func TestHub_NilBase(t *testing.T) {
	hub := NewHub(nil)
	assert.NotPanics(t, func() {
		hub.Status("x")()
		hub.Info("y")
	})
}

func TestRemote(t *testing.T) {
	peer := &fakePeer{}
	r := NewRemote(peer)

	dismiss := r.Status("Uninstalling generator-foo ...")
	r.Info("generator-foo successfully uninstalled.")
	r.Error("Failed to uninstall generator-foo")
	r.StatusFor("done", 10*time.Second)
	dismiss()

	require.Len(t, peer.calls, 5)

	status := peer.calls[0].params[0].(Message)
	assert.Equal(t, MethodShowMessage, peer.calls[0].method)
	assert.Equal(t, LevelStatus, status.Level)
	assert.NotEmpty(t, status.ID)

	assert.Equal(t, Message{Level: LevelInfo, Message: "generator-foo successfully uninstalled."}, peer.calls[1].params[0])
	assert.Equal(t, Message{Level: LevelError, Message: "Failed to uninstall generator-foo"}, peer.calls[2].params[0])
	assert.Equal(t, int64(10000), peer.calls[3].params[0].(Message).TimeoutMs)

	assert.Equal(t, MethodHideMessage, peer.calls[4].method)
	assert.Equal(t, status.ID, peer.calls[4].params[0])
}

func TestRemote_DeliveryFailureIsIgnored(t *testing.T) {
	peer := &fakePeer{err: assert.AnError}
	r := NewRemote(peer)
	assert.NotPanics(t, func() { r.Info("x") })
}

func TestMessageJSON(t *testing.T) {
	data, err := json.Marshal(Message{Level: LevelInfo, Message: "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"info","message":"hi"}`, string(data))
}

func TestGeneratorEvents(t *testing.T) {
	rec := &recorder{}
	e := NewGeneratorEvents(rec)
	assert.False(t, e.Installing())

	e.DoGeneratorInstall()
	e.DoGeneratorInstall()
	assert.True(t, e.Installing())

	e.DoGeneratorDone(true, "", "/work/app")
	assert.False(t, e.Installing())

	e.DoGeneratorDone(false, "generator failed", "")

	assert.Equal(t, []string{
		"status:" + InstallingDependenciesMessage,
		"dismiss:" + InstallingDependenciesMessage,
		"info:" + ProjectGeneratedMessage + " Location: /work/app",
		"error:generator failed",
	}, rec.Events())
}

func TestGeneratorEvents_PerSession(t *testing.T) {
	a := NewGeneratorEvents(&recorder{})
	b := NewGeneratorEvents(&recorder{})

	a.DoGeneratorInstall()
	assert.True(t, a.Installing())
	assert.False(t, b.Installing())
}
