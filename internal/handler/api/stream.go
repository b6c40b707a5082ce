package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"FinDash/internal/domain/models"
	"FinDash/internal/usecase"
	applogger "FinDash/pkg/logger"
	"FinDash/pkg/util"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	maxFrameSize = 1 << 12
)

// Client frame types.
const (
	msgSelect = "select"
	msgPing   = "ping"
)

// Server frame types.
const (
	frameReady   = "ready"
	frameFutures = "futures"
	framePong    = "pong"
	frameError   = "error"
)

type clientMessage struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

type streamFrame struct {
	Type    string                `json:"type"`
	Session string                `json:"session,omitempty"`
	Symbol  string                `json:"symbol,omitempty"`
	Result  *models.FuturesResult `json:"result,omitempty"`
	Message string                `json:"message,omitempty"`
}

// StreamOption configures StreamHandler.
type StreamOption func(*StreamHandler)

// WithRefresh re-sends the selected symbol every d. Zero disables refresh.
func WithRefresh(d time.Duration) StreamOption {
	return func(h *StreamHandler) { h.refresh = d }
}

// WithCheckOrigin overrides the upgrader's origin check.
func WithCheckOrigin(fn func(r *http.Request) bool) StreamOption {
	return func(h *StreamHandler) { h.upgrader.CheckOrigin = fn }
}

// StreamHandler pushes futures snapshots over a WebSocket. When the client
// switches symbols, results still in flight for the previous one are dropped.
type StreamHandler struct {
	logger   *applogger.Logger
	futures  *usecase.FuturesService
	refresh  time.Duration
	upgrader websocket.Upgrader
}

func NewStreamHandler(logger *applogger.Logger, futures *usecase.FuturesService, opts ...StreamOption) *StreamHandler {
	h := &StreamHandler{
		logger:  logger.Component("api.stream"),
		futures: futures,
		refresh: 15 * time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *StreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/futures", h.Serve)
}

func (h *StreamHandler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warn("websocket upgrade failed", applogger.Error(err))
		return nil
	}

	s := &session{
		id:      uuid.NewString(),
		conn:    conn,
		futures: h.futures,
	}
	s.log = h.logger.With(applogger.String("session", s.id))
	s.run(c.Request().Context(), h.refresh)
	return nil
}

type session struct {
	id      string
	conn    *websocket.Conn
	futures *usecase.FuturesService
	log     *applogger.Logger

	writeMu sync.Mutex
	latest  usecase.Latest
	wg      sync.WaitGroup

	mu     sync.Mutex
	symbol string
}

func (s *session) run(parent context.Context, refresh time.Duration) {
	ctx, cancel := context.WithCancel(parent)
	defer func() {
		cancel()
		s.latest.Stop()
		s.wg.Wait()
		_ = s.conn.Close()
		s.log.Debug("websocket session closed")
	}()

	s.log.Debug("websocket session opened")
	if err := s.write(streamFrame{Type: frameReady, Session: s.id}); err != nil {
		return
	}

	s.conn.SetReadLimit(maxFrameSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.keepalive(ctx, refresh)
	}()

	for {
		var msg clientMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debug("websocket read ended", applogger.Error(err))
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))

		switch msg.Type {
		case msgSelect:
			symbol := util.NormalizeSymbol(msg.Symbol)
			if symbol == "" || len(symbol) > 16 {
				_ = s.write(streamFrame{Type: frameError, Message: "symbol is required"})
				continue
			}
			s.setSymbol(symbol)
			s.push(ctx, symbol)
		case msgPing:
			_ = s.write(streamFrame{Type: framePong})
		default:
			_ = s.write(streamFrame{Type: frameError, Message: "unknown message type " + msg.Type})
		}
	}
}

// push fetches symbol and sends it unless a newer push has started
// meanwhile. The ticket is taken before returning so tickets follow the
// order of client messages.
func (s *session) push(ctx context.Context, symbol string) {
	ctx, t := s.latest.Begin(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		res := s.futures.Fetch(ctx, symbol)

		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if !s.latest.Current(t) {
			s.log.Debug("dropping superseded snapshot", applogger.String("symbol", symbol))
			return
		}
		s.latest.End(t)
		if err := s.writeLocked(streamFrame{Type: frameFutures, Symbol: symbol, Result: &res}); err != nil {
			s.log.Debug("websocket write failed", applogger.Error(err))
		}
	}()
}

func (s *session) keepalive(ctx context.Context, refresh time.Duration) {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	var tick <-chan time.Time
	if refresh > 0 {
		t := time.NewTicker(refresh)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-tick:
			if symbol := s.currentSymbol(); symbol != "" {
				s.push(ctx, symbol)
			}
		}
	}
}

func (s *session) write(f streamFrame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.writeLocked(f)
}

func (s *session) writeLocked(f streamFrame) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(f)
}

func (s *session) setSymbol(symbol string) {
	s.mu.Lock()
	s.symbol = symbol
	s.mu.Unlock()
}

func (s *session) currentSymbol() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.symbol
}
