package rpc

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Handler serves one method. The returned value is sent back as the result.
type Handler func(ctx context.Context, params Params) (any, error)

// Conn is one end of an RPC channel.
type Conn struct {
	ws      *websocket.Conn
	metrics *metrics.Metrics

	writeMu sync.Mutex

	handlersMu sync.RWMutex
	handlers   map[string]Handler

	pendingMu sync.Mutex
	pending   map[string]chan *Message

	done      chan struct{}
	closeOnce sync.Once
}

// NewConn wraps an established websocket. m may be nil.
func NewConn(ws *websocket.Conn, m *metrics.Metrics) *Conn {
	return &Conn{
		ws:       ws,
		metrics:  m,
		handlers: make(map[string]Handler),
		pending:  make(map[string]chan *Message),
		done:     make(chan struct{}),
	}
}

// Dial connects to an RPC endpoint.
func Dial(ctx context.Context, url string, header http.Header, m *metrics.Metrics) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return NewConn(ws, m), nil
}

// Register makes method callable by the remote side.
func (c *Conn) Register(method string, h Handler) {
	c.handlersMu.Lock()
	defer c.handlersMu.Unlock()
	c.handlers[method] = h
}

// Serve reads frames until the connection closes. Each request runs on its own
// goroutine with a context that is not canceled when the connection goes away, so
// work a request started outlives the peer. Serve returns nil on a normal close.
func (c *Conn) Serve(ctx context.Context) error {
	defer c.Close()
	handlerCtx := context.WithoutCancel(ctx)

	go func() {
		select {
		case <-ctx.Done():
			c.Close()
		case <-c.done:
		}
	}()

	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			select {
			case <-c.done:
				return nil
			default:
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("%w: %w", errors.ErrConnClosed, err)
		}

		if msg.IsRequest() {
			c.metrics.RecordRPCMessage("in", msg.Method)
			go c.handle(handlerCtx, &msg)
			continue
		}
		c.deliver(&msg)
	}
}

func (c *Conn) handle(ctx context.Context, msg *Message) {
	c.handlersMu.RLock()
	h, ok := c.handlers[msg.Method]
	c.handlersMu.RUnlock()

	resp := &Message{ID: msg.ID}
	result, err := c.dispatch(ctx, h, ok, msg)
	if err != nil {
		logger.Debug("rpc request failed", logger.Fields{"method": msg.Method, "error": err.Error()})
		resp.Error = &Error{Message: err.Error()}
	} else if resp.Result, err = json.Marshal(result); err != nil {
		resp.Result = nil
		resp.Error = &Error{Message: err.Error()}
	}

	if err := c.write(resp); err != nil {
		logger.Debug("failed to send rpc response", logger.Fields{"method": msg.Method, "error": err.Error()})
	}
}

func (c *Conn) dispatch(ctx context.Context, h Handler, ok bool, msg *Message) (result any, err error) {
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownMethod, msg.Method)
	}
	params, err := parseParams(msg.Params)
	if err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("rpc handler panicked", logger.Fields{"method": msg.Method, "panic": fmt.Sprint(r)})
			err = fmt.Errorf("internal error in %s", msg.Method)
		}
	}()
	return h(ctx, params)
}

func (c *Conn) deliver(msg *Message) {
	c.pendingMu.Lock()
	ch, ok := c.pending[msg.ID]
	delete(c.pending, msg.ID)
	c.pendingMu.Unlock()

	if !ok {
		// Responses to Invoke are not awaited.
		return
	}
	ch <- msg
}

func (c *Conn) write(msg *Message) error {
	select {
	case <-c.done:
		return errors.ErrConnClosed
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(msg)
}

func (c *Conn) request(method string, params []any) (*Message, error) {
	if params == nil {
		params = []any{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidParams, err)
	}
	return &Message{ID: uuid.NewString(), Method: method, Params: raw}, nil
}

// Invoke calls method on the remote side without waiting for its result.
func (c *Conn) Invoke(_ context.Context, method string, params []any) error {
	msg, err := c.request(method, params)
	if err != nil {
		return err
	}
	c.metrics.RecordRPCMessage("out", method)
	return c.write(msg)
}

// Call calls method on the remote side and decodes its result into result, which
// may be nil.
func (c *Conn) Call(ctx context.Context, method string, params []any, result any) error {
	msg, err := c.request(method, params)
	if err != nil {
		return err
	}

	ch := make(chan *Message, 1)
	c.pendingMu.Lock()
	c.pending[msg.ID] = ch
	c.pendingMu.Unlock()
	defer func() {
		c.pendingMu.Lock()
		delete(c.pending, msg.ID)
		c.pendingMu.Unlock()
	}()

	c.metrics.RecordRPCMessage("out", method)
	if err := c.write(msg); err != nil {
		return err
	}

	select {
	case resp := <-ch:
		if resp.Error != nil {
			return resp.Error
		}
		if result == nil || len(resp.Result) == 0 {
			return nil
		}
		return json.Unmarshal(resp.Result, result)
	case <-c.done:
		return errors.ErrConnClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the connection is closed.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close closes the connection. Pending calls fail with ErrConnClosed.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()
		if err := c.ws.Close(); err != nil && !stderrors.Is(err, websocket.ErrCloseSent) {
			logger.Debug("websocket close failed", logger.Fields{"error": err.Error()})
		}
	})
}
