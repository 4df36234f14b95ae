package bridge

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestead3d/homestead-go/engine/camera"
	"github.com/homestead3d/homestead-go/engine/scene"
)

func dialScene(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/scene"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClientReceivesCurrentFrameOnConnect(t *testing.T) {
	sc := scene.NewScene("house", nil, nil, scene.WithDayLength(0), scene.WithTimeOfDay(0.5))
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	conn := dialScene(t, server)

	var frame scene.FrameState
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &frame))

	assert.Equal(t, 0.5, frame.TimeOfDay)
	assert.Equal(t, "welcome", frame.RigState)
	assert.Contains(t, frame.Lights, "sun")
}

func TestBroadcastReachesAllClients(t *testing.T) {
	sc := scene.NewScene("house", nil, nil, scene.WithDayLength(0))
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	first := dialScene(t, server)
	second := dialScene(t, server)
	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, _, err := conn.ReadMessage() // connect frame
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool { return b.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	sc.Advance(1.0 / 60.0)
	b.Broadcast(sc.Frame())

	for _, conn := range []*websocket.Conn{first, second} {
		var frame scene.FrameState
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &frame))
		assert.Equal(t, sc.Frame().Tick, frame.Tick)
	}
}

func TestInputMessagesSteerTheScene(t *testing.T) {
	sc := scene.NewScene("house", nil, nil, scene.WithDayLength(0))
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	conn := dialScene(t, server)

	send := func(msg string) {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
	}

	send(`{"type":"welcome","show":false}`)
	send(`{"type":"mode","mode":"signup"}`)
	assert.Eventually(t, func() bool {
		sc.Advance(1.0 / 60.0)
		return sc.Rig().State() == camera.StateSignupFocus
	}, 2*time.Second, 10*time.Millisecond)

	send(`{"type":"auth","authenticated":true}`)
	assert.Eventually(t, func() bool {
		sc.Advance(1.0 / 60.0)
		return sc.Rig().State() == camera.StateAuthenticated
	}, 2*time.Second, 10*time.Millisecond)

	send(`{"type":"time","value":0.25}`)
	assert.Eventually(t, func() bool {
		return sc.TimeOfDay() == 0.25
	}, 2*time.Second, 10*time.Millisecond)

	// Garbage and unknown types are ignored without killing the connection.
	send(`not json`)
	send(`{"type":"warp","value":9}`)
	send(`{"type":"time","value":0.75}`)
	assert.Eventually(t, func() bool {
		return sc.TimeOfDay() == 0.75
	}, 2*time.Second, 10*time.Millisecond)
}

// Clients joining mid-stream must not interleave their connect frame with a
// broadcast in flight: every write to a registered conn goes through
// Broadcast, so each client's first message is always its connect frame.
func TestConnectWhileBroadcasting(t *testing.T) {
	sc := scene.NewScene("house", nil, nil, scene.WithDayLength(0), scene.WithTimeOfDay(0.5))
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				b.Broadcast(sc.Frame())
			}
		}
	}()

	for i := 0; i < 10; i++ {
		conn := dialScene(t, server)
		var frame scene.FrameState
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &frame))
		assert.Equal(t, 0.5, frame.TimeOfDay)
	}

	close(stop)
	wg.Wait()
}

func TestDisconnectUnregistersClient(t *testing.T) {
	sc := scene.NewScene("house", nil, nil)
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	conn := dialScene(t, server)
	assert.Eventually(t, func() bool { return b.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return b.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHealthEndpoint(t *testing.T) {
	sc := scene.NewScene("house", nil, nil, scene.WithDayLength(0), scene.WithTimeOfDay(0.5))
	b := NewBridge(sc)
	server := httptest.NewServer(b.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "house", body["scene"])
	assert.Equal(t, 0.5, body["time_of_day"])
	assert.Equal(t, "welcome", body["rig_state"])
}
