package gameserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/grindstone/internal/game/action"
	"github.com/cory-johannsen/grindstone/internal/game/engine"
	"github.com/cory-johannsen/grindstone/internal/game/regen"
	"github.com/cory-johannsen/grindstone/internal/gameserver"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []engine.Event
}

func (p *recordingPublisher) Publish(_ context.Context, ev engine.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) byType(typ engine.EventType) []engine.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []engine.Event
	for _, ev := range p.events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func serveHub(t *testing.T, hub *gameserver.Hub) string {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) engine.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev engine.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestHub_DeliversOnlyToTargetPlayer(t *testing.T) {
	hub := gameserver.NewHub(time.Second, nil, zaptest.NewLogger(t))
	url := serveHub(t, hub)

	alice := dial(t, url+"?player_id=1")
	bob := dial(t, url+"?player_id=2")
	require.Eventually(t, func() bool { return hub.Clients(1) == 1 && hub.Clients(2) == 1 },
		time.Second, 5*time.Millisecond)

	hub.Publish(context.Background(), engine.Event{
		Type: engine.EventPoolSync, PlayerID: 1, At: t0,
		Pool: &regen.PoolState{CurrentHP: 42, MaxHP: 100},
	})
	ev := readEvent(t, alice)
	assert.Equal(t, engine.EventPoolSync, ev.Type)
	require.NotNil(t, ev.Pool)
	assert.Equal(t, 42, ev.Pool.CurrentHP)

	require.NoError(t, bob.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := bob.ReadMessage()
	var netErr interface{ Timeout() bool }
	require.True(t, errors.As(err, &netErr) && netErr.Timeout(), "bob must not receive alice's event")
}

func TestHub_SendsSnapshotOnConnect(t *testing.T) {
	snapshot := func(_ context.Context, playerID int64) (engine.Event, error) {
		return engine.Event{Type: engine.EventPoolSync, PlayerID: playerID, Pool: &regen.PoolState{MaxHP: 100}}, nil
	}
	hub := gameserver.NewHub(time.Second, snapshot, zaptest.NewLogger(t))
	url := serveHub(t, hub)

	conn := dial(t, url+"?player_id=7")
	ev := readEvent(t, conn)
	assert.Equal(t, int64(7), ev.PlayerID)
	assert.Equal(t, 100, ev.Pool.MaxHP)
}

func TestHub_RejectsMissingPlayer(t *testing.T) {
	hub := gameserver.NewHub(time.Second, nil, zaptest.NewLogger(t))
	srv := httptest.NewServer(hub)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := gameserver.NewHub(time.Second, nil, zaptest.NewLogger(t))
	url := serveHub(t, hub)

	conn := dial(t, url+"?player_id=3")
	require.Eventually(t, func() bool { return hub.Clients(3) == 1 }, time.Second, 5*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return hub.Clients(3) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_PushesEngineCompletions(t *testing.T) {
	hub := gameserver.NewHub(time.Second, nil, zaptest.NewLogger(t))
	url := serveHub(t, hub)
	w := newWorld(t, hub)
	ctx := context.Background()

	conn := dial(t, url+"?player_id="+itoa(w.playerID))
	require.Eventually(t, func() bool { return hub.Clients(w.playerID) == 1 }, time.Second, 5*time.Millisecond)

	_, err := w.svc.StartAction(ctx, w.playerID, "train", action.Options{Loop: false})
	require.NoError(t, err)
	w.clock.Set(time.Minute)
	_, err = w.svc.GetActiveAction(ctx, w.playerID)
	require.NoError(t, err)

	ev := readEvent(t, conn)
	assert.Equal(t, engine.EventActionCompleted, ev.Type)
	require.NotNil(t, ev.Completion)
	assert.Equal(t, "train", ev.Completion.ActionID)
	assert.Equal(t, action.StopNoLoop, ev.Completion.StopReason)
}

func TestHub_KeepsEventsPublishedWhileSnapshotting(t *testing.T) {
	var hub *gameserver.Hub
	snapshot := func(ctx context.Context, playerID int64) (engine.Event, error) {
		hub.Publish(ctx, engine.Event{Type: engine.EventActionCancelled, PlayerID: playerID, At: t0})
		return engine.Event{Type: engine.EventPoolSync, PlayerID: playerID, Pool: &regen.PoolState{MaxHP: 100}}, nil
	}
	hub = gameserver.NewHub(time.Second, snapshot, zaptest.NewLogger(t))
	url := serveHub(t, hub)

	conn := dial(t, url+"?player_id=9")
	assert.Equal(t, engine.EventActionCancelled, readEvent(t, conn).Type)
	assert.Equal(t, engine.EventPoolSync, readEvent(t, conn).Type)
}

func TestHub_UnknownPlayerSnapshotUnregisters(t *testing.T) {
	snapshot := func(context.Context, int64) (engine.Event, error) {
		return engine.Event{}, errors.New("no such player")
	}
	hub := gameserver.NewHub(time.Second, snapshot, zaptest.NewLogger(t))
	url := serveHub(t, hub)

	conn := dial(t, url+"?player_id=11")
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation))
	assert.Zero(t, hub.Clients(11))
}
