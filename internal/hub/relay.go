package hub

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/cndaip/chatroom/internal/model/message"
)

// Completer opens a completion for query and returns the ordered delta
// stream. Implemented by the ai service.
type Completer interface {
	Stream(ctx context.Context, query string) (*schema.StreamReader[*schema.Message], error)
}

// PersonaName is the display name AI replies are attributed to.
const PersonaName = "川小农"

// streamErrorFragment terminates a session whose upstream call failed.
const streamErrorFragment = "\n[系统错误: AI连接失败]"

// Relay multiplexes streamed AI completions into ai_stream_update
// broadcasts keyed by session id. Sessions run as independent goroutines
// and never block ordinary chat traffic or each other.
type Relay struct {
	hub *Hub
	ai  Completer
}

func newRelay(h *Hub, ai Completer) *Relay {
	return &Relay{hub: h, ai: ai}
}

// HandleQuery broadcasts the asker's original message and an ai_chat
// placeholder carrying a fresh session id, then streams deltas in the
// background. The session has no tie to the asker's connection: it keeps
// broadcasting to the room if they disconnect. Returns the session id.
func (r *Relay) HandleQuery(sender, content, query string, ts json.RawMessage) string {
	sessionID := uuid.NewString()

	// 先广播用户自己的消息，让所有人看到提问。
	r.hub.Broadcast(&message.Outbound{
		Type:      message.TypeText,
		Sender:    sender,
		Content:   content,
		Timestamp: ts,
	})
	r.hub.Broadcast(&message.Outbound{
		Type:      message.TypeAIChat,
		Sender:    PersonaName,
		Content:   query,
		ID:        sessionID,
		Timestamp: ts,
	})

	go r.stream(sessionID, query)
	return sessionID
}

func (r *Relay) stream(sessionID, query string) {
	if r.ai == nil {
		log.Printf("[relay] session %s: no completion backend configured", sessionID)
		r.fail(sessionID)
		return
	}

	sr, err := r.ai.Stream(context.Background(), query)
	if err != nil {
		log.Printf("[relay] session %s: open stream: %v", sessionID, err)
		r.fail(sessionID)
		return
	}
	defer sr.Close()

	for {
		chunk, err := sr.Recv()
		if errors.Is(err, io.EOF) {
			log.Printf("[relay] session %s complete", sessionID)
			return
		}
		if err != nil {
			log.Printf("[relay] session %s: recv: %v", sessionID, err)
			r.fail(sessionID)
			return
		}
		if chunk == nil || chunk.Content == "" {
			continue
		}

		// Each delta goes out the moment it arrives; the full reply is
		// never buffered server-side.
		r.hub.Broadcast(&message.Outbound{
			Type:    message.TypeAIStreamUpdate,
			ID:      sessionID,
			Content: chunk.Content,
		})
	}
}

func (r *Relay) fail(sessionID string) {
	r.hub.Broadcast(&message.Outbound{
		Type:    message.TypeAIStreamUpdate,
		ID:      sessionID,
		Content: streamErrorFragment,
	})
}
