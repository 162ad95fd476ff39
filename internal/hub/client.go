package hub

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second

	// sendBuffer bounds the per-client outbound queue so one slow reader
	// never blocks delivery to the rest of the room.
	sendBuffer = 256
)

// Client is one live websocket connection identified by a nickname.
type Client struct {
	name string
	conn *websocket.Conn

	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewClient wraps an upgraded websocket connection.
func NewClient(name string, conn *websocket.Conn) *Client {
	return &Client{
		name: name,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// Name returns the nickname chosen at connect time.
func (c *Client) Name() string {
	return c.name
}

// enqueue hands data to the write pump without blocking. Reports false when
// the client has shut down or its outbound queue is full.
func (c *Client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		close(c.done)
	})
}

// readPump 逐条读取入站消息并交给 hub 处理，连接断开后退出。
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.Leave(c)
		c.close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[ws] read from %s failed: %v", c.name, err)
			}
			return
		}
		h.HandleMessage(c, data)
	}
}

// writePump 串行写出队列中的消息并维持心跳。
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("[ws] write to %s failed: %v", c.name, err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
