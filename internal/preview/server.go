package preview

//go:generate templ generate -f hostpage.templ

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 50 * time.Second

	// Maximum message size allowed from peer. The host page never sends.
	maxMessageSize = 512
)

// frameCSP locks the raw document down: no scripts, no network, inline
// styles only, and a unique opaque origin.
const frameCSP = "sandbox; default-src 'none'; style-src 'unsafe-inline'"

// ServerConfig is where the preview surface listens.
type ServerConfig struct {
	Host string
	// Port 0 picks a free port.
	Port int
}

// Server is the loopback preview surface. It serves the current document
// inside a sandboxed iframe and tells open pages to reload after each
// render.
type Server struct {
	cfg   ServerConfig
	token string
	log   *zap.Logger

	mu       sync.RWMutex
	doc      Document
	revision uint64
	addr     string

	clientsMutex sync.RWMutex
	clients      map[*websocket.Conn]*client
	register     chan *client
	unregister   chan *websocket.Conn
	broadcast    chan []byte

	httpSrv   *http.Server
	done      chan struct{}
	closeOnce sync.Once
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	srv  *Server
}

// reloadMessage is sent to every connected page after a render.
type reloadMessage struct {
	Type     string `json:"type"`
	Revision uint64 `json:"revision"`
}

// NewServer returns a stopped server with a fresh session token.
func NewServer(cfg ServerConfig, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	return &Server{
		cfg:        cfg,
		token:      uuid.NewString(),
		log:        log,
		clients:    make(map[*websocket.Conn]*client),
		register:   make(chan *client),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

// Token returns the session token every request must carry.
func (s *Server) Token() string { return s.token }

// Start binds the listener and serves until ctx is cancelled or Close is
// called.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port)))
	if err != nil {
		return fmt.Errorf("bind preview server: %w", err)
	}
	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	hubCtx, cancel := context.WithCancel(ctx)
	go func() {
		<-s.done
		cancel()
	}()
	go s.runHub(hubCtx)
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("preview server stopped", zap.Error(err))
		}
	}()
	go func() {
		<-hubCtx.Done()
		s.Close()
	}()

	s.log.Info("preview server listening", zap.String("addr", s.addr))
	return nil
}

// Close stops the server and drops every client.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.httpSrv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err = s.httpSrv.Shutdown(ctx)
	})
	return err
}

// Addr returns the bound host:port, empty before Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

// URL returns the host page address including the session token.
func (s *Server) URL() string {
	return s.url("/")
}

// FrameURL returns the address of the bare sandboxed document.
func (s *Server) FrameURL() string {
	return s.url("/frame")
}

func (s *Server) url(path string) string {
	addr := s.Addr()
	if addr == "" {
		return ""
	}
	u := url.URL{Scheme: "http", Host: addr, Path: path, RawQuery: url.Values{"token": {s.token}}.Encode()}
	return u.String()
}

// Render replaces the served document and notifies open pages.
func (s *Server) Render(_ context.Context, doc Document) error {
	s.mu.Lock()
	s.doc = doc
	s.revision++
	rev := s.revision
	s.mu.Unlock()

	msg, err := json.Marshal(reloadMessage{Type: "reload", Revision: rev})
	if err != nil {
		return err
	}
	select {
	case s.broadcast <- msg:
	default:
		s.log.Debug("reload dropped, broadcast queue full", zap.Uint64("revision", rev))
	}
	return nil
}

// Current returns the served document and its revision.
func (s *Server) Current() (Document, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc, s.revision
}

// Handler returns the HTTP routes of the preview surface.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHost)
	mux.HandleFunc("GET /frame", s.handleFrame)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s.requireToken(mux)
}

// requireToken rejects requests that do not carry the session token.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.URL.Query().Get("token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setCommonHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Referrer-Policy", "no-referrer")
	h.Set("Cache-Control", "no-store")
}

func (s *Server) handleFrame(w http.ResponseWriter, _ *http.Request) {
	doc, _ := s.Current()
	setCommonHeaders(w)
	w.Header().Set("Content-Security-Policy", frameCSP)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc.String()))
}

func (s *Server) handleHost(w http.ResponseWriter, r *http.Request) {
	doc, rev := s.Current()
	setCommonHeaders(w)
	w.Header().Set("Content-Security-Policy", hostCSP(r.Host))
	w.Header().Set("X-Frame-Options", "DENY")
	templ.Handler(hostPage(doc, rev, s.token)).ServeHTTP(w, r)
}

// hostCSP lets the host page run its own reload script and talk to the
// websocket on the same host; the framed document gets nothing.
func hostCSP(host string) string {
	return "default-src 'none'; script-src 'unsafe-inline'; style-src 'unsafe-inline'; " +
		"connect-src ws://" + host + "; frame-src 'self'"
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Validate origin before accepting connection
	if !s.checkOrigin(r) {
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.allowedOrigins(),
	})
	if err != nil {
		s.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 16), srv: s}
	go c.writePump()
	go c.readPump()

	select {
	case s.register <- c:
	case <-s.done:
		conn.Close(websocket.StatusGoingAway, "server closing")
	}
}

// allowedOrigins lists the hosts a page may connect from: the bound
// address and its localhost spellings.
func (s *Server) allowedOrigins() []string {
	_, port, err := net.SplitHostPort(s.Addr())
	if err != nil {
		port = strconv.Itoa(s.cfg.Port)
	}
	return []string{
		net.JoinHostPort(s.cfg.Host, port),
		net.JoinHostPort("localhost", port),
		net.JoinHostPort("127.0.0.1", port),
	}
}

// checkOrigin validates the request origin for security
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	for _, allowed := range s.allowedOrigins() {
		if u.Host == allowed {
			return true
		}
	}
	return false
}

func (s *Server) runHub(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.clientsMutex.Lock()
			for conn, c := range s.clients {
				delete(s.clients, conn)
				close(c.send)
			}
			s.clientsMutex.Unlock()
			return

		case c := <-s.register:
			s.clientsMutex.Lock()
			s.clients[c.conn] = c
			n := len(s.clients)
			s.clientsMutex.Unlock()
			s.log.Debug("preview client connected", zap.Int("clients", n))

		case conn := <-s.unregister:
			s.clientsMutex.Lock()
			if c, ok := s.clients[conn]; ok {
				delete(s.clients, conn)
				close(c.send)
			}
			s.clientsMutex.Unlock()

		case msg := <-s.broadcast:
			s.clientsMutex.Lock()
			for conn, c := range s.clients {
				select {
				case c.send <- msg:
				default:
					// Client's send channel is full, drop it.
					delete(s.clients, conn)
					close(c.send)
				}
			}
			s.clientsMutex.Unlock()
		}
	}
}

// ClientCount returns the number of connected pages.
func (s *Server) ClientCount() int {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()
	return len(s.clients)
}

// readPump drains the connection so close frames and pongs are handled.
func (c *client) readPump() {
	defer func() {
		select {
		case c.srv.unregister <- c.conn:
		case <-c.srv.done:
		}
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := c.conn.Read(context.Background()); err != nil {
			return
		}
	}
}

// writePump forwards queued messages and keeps the connection alive.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Write(ctx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Ping(ctx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
