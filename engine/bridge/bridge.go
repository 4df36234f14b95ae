package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/homestead3d/homestead-go/engine/camera"
	"github.com/homestead3d/homestead-go/engine/scene"
)

// bridgeImpl implements the Bridge interface.
// Fans scene frame state out to connected renderer clients and feeds UI
// input messages back into the scene.
type bridgeImpl struct {
	mu sync.Mutex

	scene scene.Scene

	listenAddr   string
	writeTimeout time.Duration

	clients map[*websocket.Conn]bool
	server  *http.Server
}

// Bridge connects a scene to external renderer clients over WebSocket.
// Clients receive the scene's frame state as JSON after every engine tick and
// may send input messages that steer the camera rig and day clock.
type Bridge interface {
	// Handler returns the HTTP handler serving the bridge endpoints.
	// Mount it when embedding the bridge in an existing server.
	//
	// Returns:
	//   - http.Handler: handler exposing /scene and /healthz
	Handler() http.Handler

	// Start begins serving on the configured listen address in a background
	// goroutine. Returns immediately; serve errors are logged.
	Start()

	// Shutdown gracefully closes the server and all client connections.
	//
	// Parameters:
	//   - ctx: deadline for the graceful shutdown
	//
	// Returns:
	//   - error: error if shutdown fails
	Shutdown(ctx context.Context) error

	// Broadcast sends the frame state to all connected clients as JSON.
	// Clients that cannot keep up are dropped.
	//
	// Parameters:
	//   - frame: the frame state to send
	Broadcast(frame scene.FrameState)

	// ClientCount returns the number of connected clients.
	//
	// Returns:
	//   - int: connected client count
	ClientCount() int
}

var _ Bridge = &bridgeImpl{}

// inputMessage is the envelope for client-to-scene messages.
// The type field selects which of the remaining fields is read.
type inputMessage struct {
	Type          string  `json:"type"`
	Mode          string  `json:"mode,omitempty"`
	Authenticated bool    `json:"authenticated,omitempty"`
	Show          bool    `json:"show,omitempty"`
	Value         float64 `json:"value,omitempty"`
}

// NewBridge creates a Bridge serving the given scene.
//
// Parameters:
//   - sc: the scene whose frames are broadcast and whose rig receives input
//   - options: functional options for bridge configuration
//
// Returns:
//   - Bridge: the newly created bridge
func NewBridge(sc scene.Scene, options ...BridgeBuilderOption) Bridge {
	b := &bridgeImpl{
		scene:        sc,
		listenAddr:   ":8384",
		writeTimeout: 200 * time.Millisecond,
		clients:      make(map[*websocket.Conn]bool),
	}

	for _, opt := range options {
		opt(b)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/scene", b.handleSceneWS)
	mux.HandleFunc("/healthz", b.handleHealth)
	b.server = &http.Server{Addr: b.listenAddr, Handler: mux}

	return b
}

func (b *bridgeImpl) Handler() http.Handler {
	return b.server.Handler
}

func (b *bridgeImpl) Start() {
	go func() {
		log.Info().Str("addr", b.listenAddr).Msg("bridge listening")
		if err := b.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("bridge server stopped")
		}
	}()
}

func (b *bridgeImpl) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	for c := range b.clients {
		c.Close()
	}
	b.clients = make(map[*websocket.Conn]bool)
	b.mu.Unlock()

	if err := b.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("bridge shutdown: %w", err)
	}
	return nil
}

func (b *bridgeImpl) Broadcast(frame scene.FrameState) {
	data, err := json.Marshal(frame)
	if err != nil {
		log.Error().Err(err).Msg("marshal frame")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for c := range b.clients {
		c.SetWriteDeadline(time.Now().Add(b.writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Debug().Err(err).Msg("dropping slow client")
			delete(b.clients, c)
			c.Close()
		}
	}
}

func (b *bridgeImpl) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// handleSceneWS upgrades the connection, sends the current frame so new
// clients render immediately, then registers the client and starts the read
// loop.
func (b *bridgeImpl) handleSceneWS(w http.ResponseWriter, r *http.Request) {
	up := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := up.Upgrade(w, r, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}

	// The connect frame goes out before the conn is registered: once it is in
	// the client map, Broadcast owns all writes to it.
	if data, err := json.Marshal(b.scene.Frame()); err == nil {
		conn.SetWriteDeadline(time.Now().Add(b.writeTimeout))
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}

	b.mu.Lock()
	b.clients[conn] = true
	b.mu.Unlock()
	log.Info().Str("remote", conn.RemoteAddr().String()).Msg("renderer client connected")

	go b.readLoop(conn)
}

// readLoop consumes input messages until the connection errors, then
// unregisters the client.
func (b *bridgeImpl) readLoop(conn *websocket.Conn) {
	defer func() {
		b.mu.Lock()
		delete(b.clients, conn)
		b.mu.Unlock()
		conn.Close()
		log.Info().Str("remote", conn.RemoteAddr().String()).Msg("renderer client disconnected")
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg inputMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Msg("bad input message")
			continue
		}
		b.applyInput(msg)
	}
}

// applyInput routes one input message to the scene or its rig.
// Unknown types are logged and ignored.
func (b *bridgeImpl) applyInput(msg inputMessage) {
	rig := b.scene.Rig()
	switch msg.Type {
	case "mode":
		rig.SetMode(camera.ParseMode(msg.Mode))
	case "auth":
		rig.SetAuthenticated(msg.Authenticated)
	case "welcome":
		rig.SetShowWelcome(msg.Show)
	case "time":
		b.scene.SetTimeOfDay(msg.Value)
	default:
		log.Debug().Str("type", msg.Type).Msg("unknown input message type")
	}
}

func (b *bridgeImpl) handleHealth(w http.ResponseWriter, r *http.Request) {
	frame := b.scene.Frame()
	resp := map[string]any{
		"scene":       b.scene.Name(),
		"tick":        frame.Tick,
		"time_of_day": frame.TimeOfDay,
		"rig_state":   frame.RigState,
		"clients":     b.ClientCount(),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
