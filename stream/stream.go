// Package stream carries raw cell-buffer frames over websocket
// connections. An external producer publishes one binary message per
// frame; the receiving side hands each payload to a frame handler for
// decoding and painting.
package stream

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// FrameHandler receives the raw payload of one frame message.
// The payload is only valid for the duration of the call.
type FrameHandler func(data []byte)

// ServerOptions configures a frame server
type ServerOptions struct {
	MaxFrameBytes int64         // Largest accepted frame payload (default: 1 MiB)
	ReadTimeout   time.Duration // Per-frame read deadline (default: none)
	CheckOrigin   func(r *http.Request) bool
}

// Server accepts websocket connections and feeds every binary message
// to the frame handler. It implements http.Handler.
type Server struct {
	handler  FrameHandler
	opts     ServerOptions
	upgrader websocket.Upgrader
}

// NewServer creates a frame server delivering payloads to handler
func NewServer(handler FrameHandler, opts ServerOptions) *Server {
	if opts.MaxFrameBytes <= 0 {
		opts.MaxFrameBytes = 1 << 20
	}
	return &Server{
		handler: handler,
		opts:    opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: opts.CheckOrigin,
		},
	}
}

// ServeHTTP upgrades the connection and reads frames until the peer
// closes or a read fails. Non-binary messages are ignored.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.opts.MaxFrameBytes)
	for {
		if s.opts.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout))
		}
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		s.handler(data)
	}
}

// Publisher sends frames to a stream server over one websocket
// connection. Writes are serialized; a Publisher may be shared between
// goroutines.
type Publisher struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
}

// Dial connects to a frame server. The timeout covers the dial and
// handshake and is reused as the per-frame write deadline.
func Dial(url string, timeout time.Duration) (*Publisher, error) {
	dialer := *websocket.DefaultDialer
	dialer.HandshakeTimeout = timeout

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, writeTimeout: timeout}, nil
}

// SendFrame sends one frame payload as a binary message
func (p *Publisher) SendFrame(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return errors.New("stream: publisher is closed")
	}
	if p.writeTimeout > 0 {
		p.conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	}
	return p.conn.WriteMessage(websocket.BinaryMessage, data)
}

// Close sends a close message and tears down the connection
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	p.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := p.conn.Close()
	p.conn = nil
	return err
}
