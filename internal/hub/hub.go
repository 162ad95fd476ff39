// Package hub implements the chat room core: the presence registry, the
// broadcast fan-out and the AI streaming relay.
package hub

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/cndaip/chatroom/internal/model/message"
	"github.com/cndaip/chatroom/internal/service/command"
	"github.com/cndaip/chatroom/internal/service/news"
)

// Hub owns the registry and routes inbound messages to their handlers.
type Hub struct {
	registry *Registry
	relay    *Relay
	news     news.Provider
}

// New wires a hub. ai may be nil when no model credentials are configured;
// AI requests then answer with the stream error fragment instead.
func New(ai Completer, provider news.Provider) *Hub {
	if provider == nil {
		provider = news.StaticProvider{}
	}
	h := &Hub{
		registry: NewRegistry(),
		news:     provider,
	}
	h.relay = newRelay(h, ai)
	return h
}

// Online reports whether the nickname is currently connected.
func (h *Hub) Online(name string) bool {
	return h.registry.Contains(name)
}

// Join registers c and announces the arrival with a full roster snapshot.
func (h *Hub) Join(c *Client) error {
	if err := h.registry.Register(c.name, c); err != nil {
		return err
	}

	log.Printf("[hub] user connected: %s", c.name)
	h.Broadcast(&message.Outbound{
		Type:        message.TypeSystem,
		Content:     fmt.Sprintf("%s 加入了聊天室", c.name),
		OnlineUsers: h.registry.Names(),
	})
	return nil
}

// Leave removes c from the registry and announces the departure. A close of
// a superseded duplicate connection is not the registered owner and
// announces nothing.
func (h *Hub) Leave(c *Client) {
	if !h.registry.Unregister(c.name, c) {
		log.Printf("[hub] duplicate connection closed for %s, keeping original", c.name)
		return
	}

	log.Printf("[hub] user disconnected: %s", c.name)
	h.Broadcast(&message.Outbound{
		Type:        message.TypeSystem,
		Content:     fmt.Sprintf("%s 离开了聊天室", c.name),
		OnlineUsers: h.registry.Names(),
	})
}

// Serve runs the client's pumps until the connection drops. Blocks until
// the read side finishes.
func (h *Hub) Serve(c *Client) {
	go c.writePump()
	c.readPump(h)
}

// HandleMessage 解析入站消息并按指令分发。无法解析的消息记录后丢弃，连接保持打开。
func (h *Hub) HandleMessage(c *Client, raw []byte) {
	var in message.Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Printf("[hub] malformed message from %s dropped: %v", c.name, err)
		return
	}

	cmd := command.Classify(in.Type, in.Content, h.registry.Contains)
	switch cmd.Kind {
	case command.Passthrough:
		// Already rendered by the sender, e.g. a weather card. Relay verbatim.
		h.broadcastRaw(raw)
	case command.Movie:
		h.Broadcast(&message.Outbound{
			Type:       message.TypeMovie,
			Sender:     c.name,
			Content:    cmd.URL,
			RawContent: in.Content,
			Timestamp:  in.Timestamp,
		})
	case command.News:
		h.Broadcast(&message.Outbound{
			Type:      message.TypeText,
			Sender:    news.SenderName,
			Content:   h.news.Headlines(),
			Timestamp: in.Timestamp,
		})
	case command.AI:
		h.relay.HandleQuery(c.name, in.Content, cmd.Query, in.Timestamp)
	case command.Mention:
		h.Broadcast(&message.Outbound{
			Type:      message.TypeMention,
			Sender:    c.name,
			Content:   in.Content,
			Target:    cmd.Target,
			Timestamp: in.Timestamp,
		})
	default:
		h.Broadcast(&message.Outbound{
			Type:      message.TypeText,
			Sender:    c.name,
			Content:   in.Content,
			Timestamp: in.Timestamp,
		})
	}
}

// Broadcast delivers msg to every client registered at call time. Delivery
// is attempted per recipient independently; a failed recipient is logged
// and skipped, never aborting the rest of the fan-out.
func (h *Hub) Broadcast(msg *message.Outbound) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[hub] failed to marshal broadcast: %v", err)
		return
	}
	h.broadcastRaw(data)
}

func (h *Hub) broadcastRaw(data []byte) {
	for _, c := range h.registry.snapshot() {
		if !c.enqueue(data) {
			log.Printf("[hub] send to %s failed, message dropped", c.name)
		}
	}
}
