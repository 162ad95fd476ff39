package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/cndaip/chatroom/internal/hub"
	"github.com/cndaip/chatroom/internal/model/message"
)

func setupServer(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()
	chatHub := hub.New(nil, nil)
	handler := New(chatHub)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	handler.RegisterAPIRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, chatHub
}

func dial(t *testing.T, srv *httptest.Server, nickname string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	if nickname != "" {
		wsURL += "?nickname=" + url.QueryEscape(nickname)
	}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readOutbound(t *testing.T, conn *websocket.Conn) message.Outbound {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg message.Outbound
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return msg
}

func expectPolicyClose(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected policy violation close, got %v", err)
	}
}

func TestConnectWithoutNicknameRejected(t *testing.T) {
	srv, _ := setupServer(t)

	conn := dial(t, srv, "")
	expectPolicyClose(t, conn)
}

func TestConnectAnnouncesJoin(t *testing.T) {
	srv, chatHub := setupServer(t)

	conn := dial(t, srv, "alice")
	msg := readOutbound(t, conn)
	if msg.Type != message.TypeSystem {
		t.Fatalf("expected system join, got %+v", msg)
	}
	if len(msg.OnlineUsers) != 1 || msg.OnlineUsers[0] != "alice" {
		t.Fatalf("unexpected roster: %v", msg.OnlineUsers)
	}
	if !chatHub.Online("alice") {
		t.Fatal("alice not registered")
	}
}

func TestDuplicateNicknameRejected(t *testing.T) {
	srv, chatHub := setupServer(t)

	first := dial(t, srv, "alice")
	readOutbound(t, first)

	second := dial(t, srv, "alice")
	expectPolicyClose(t, second)

	if !chatHub.Online("alice") {
		t.Fatal("losing connection evicted the original")
	}
}

func TestMessageBroadcastToAllClients(t *testing.T) {
	srv, _ := setupServer(t)

	alice := dial(t, srv, "alice")
	readOutbound(t, alice)
	bob := dial(t, srv, "bob")
	readOutbound(t, alice) // bob's join
	readOutbound(t, bob)

	payload, _ := json.Marshal(message.Inbound{Type: "text", Content: "hello room"})
	if err := alice.WriteMessage(websocket.TextMessage, payload); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, conn := range []*websocket.Conn{alice, bob} {
		msg := readOutbound(t, conn)
		if msg.Type != message.TypeText || msg.Sender != "alice" || msg.Content != "hello room" {
			t.Fatalf("unexpected broadcast: %+v", msg)
		}
	}
}

func TestDisconnectAnnouncesLeave(t *testing.T) {
	srv, chatHub := setupServer(t)

	alice := dial(t, srv, "alice")
	readOutbound(t, alice)
	bob := dial(t, srv, "bob")
	readOutbound(t, alice)
	readOutbound(t, bob)

	_ = bob.Close()

	msg := readOutbound(t, alice)
	if msg.Type != message.TypeSystem || !strings.Contains(msg.Content, "离开了聊天室") {
		t.Fatalf("expected leave broadcast, got %+v", msg)
	}
	if chatHub.Online("bob") {
		t.Fatal("bob still registered after disconnect")
	}
}

func TestNicknameCheck(t *testing.T) {
	srv, _ := setupServer(t)

	conn := dial(t, srv, "alice")
	readOutbound(t, conn)

	check := func(nickname string) (bool, string) {
		t.Helper()
		target := srv.URL + "/chat/nickname"
		if nickname != "" {
			target += "?nickname=" + url.QueryEscape(nickname)
		}
		resp, err := http.Get(target)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Available bool   `json:"available"`
			Message   string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return body.Available, body.Message
	}

	if ok, _ := check("alice"); ok {
		t.Fatal("taken nickname reported available")
	}
	if ok, _ := check("bob"); !ok {
		t.Fatal("free nickname reported taken")
	}
	if ok, _ := check(""); ok {
		t.Fatal("missing nickname reported available")
	}
}
