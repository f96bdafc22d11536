package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"pet-care-hub/internal/domain/notifications"
	"pet-care-hub/internal/middleware"
	"pet-care-hub/internal/ports/auth"
)

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	h := Handler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid := r.URL.Query().Get("uid"); uid != "" {
			r = r.WithContext(middleware.WithClaims(r.Context(), auth.Claims{UserID: uid}))
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, uid string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?uid=" + uid
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func waitConnections(t *testing.T, hub *Hub, uid string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Connections(uid) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d connections for %s, got %d", want, uid, hub.Connections(uid))
}

func TestHub_PublishReachesOnlyTheUser(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub)

	alice := dial(t, srv, "u-alice")
	dial(t, srv, "u-bob")
	waitConnections(t, hub, "u-alice", 1)
	waitConnections(t, hub, "u-bob", 1)

	hub.Publish("u-alice", notifications.Notification{ID: "n1", UserID: "u-alice", Kind: notifications.KindPostLiked, Message: "Bob liked your post"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var evt Event
	if err := wsjson.Read(ctx, alice, &evt); err != nil {
		t.Fatalf("read error: %v", err)
	}
	if evt.Type != EventTypeNotification {
		t.Fatalf("expected notification event, got %q", evt.Type)
	}
	var n notifications.Notification
	if err := json.Unmarshal(evt.Payload, &n); err != nil || n.ID != "n1" || n.Kind != notifications.KindPostLiked {
		t.Fatalf("unexpected payload %s err=%v", evt.Payload, err)
	}
}

func TestHub_PingPong(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub)
	conn := dial(t, srv, "u-1")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := wsjson.Write(ctx, conn, Event{Type: EventTypePing}); err != nil {
		t.Fatalf("write error: %v", err)
	}
	var evt Event
	if err := wsjson.Read(ctx, conn, &evt); err != nil {
		t.Fatalf("read error: %v", err)
	}
	if evt.Type != EventTypePong {
		t.Fatalf("expected pong, got %q", evt.Type)
	}
}

func TestHub_DisconnectUnregisters(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub)

	conn := dial(t, srv, "u-1")
	waitConnections(t, hub, "u-1", 1)

	conn.Close(websocket.StatusNormalClosure, "bye")
	waitConnections(t, hub, "u-1", 0)

	// Publicar sin conexiones no falla.
	hub.Publish("u-1", notifications.Notification{ID: "n1"})
}

func TestHandler_RequiresUser(t *testing.T) {
	hub := NewHub(nil)
	srv := newTestServer(t, hub)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	_, resp, err := websocket.Dial(ctx, url, nil)
	if err == nil {
		t.Fatalf("expected dial to fail without user")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %#v", resp)
	}
}
