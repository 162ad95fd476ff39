package message

import "encoding/json"

// Outbound message types understood by chat clients.
const (
	TypeText           = "text"
	TypeMovie          = "movie"
	TypeMention        = "mention"
	TypeAIChat         = "ai_chat"
	TypeAIStreamUpdate = "ai_stream_update"
	TypeSystem         = "system"
)

// TypeChat marks inbound payloads carrying pre-rendered rich content.
const TypeChat = "chat"

// Inbound 客户端发来的消息信封。type 仅作参考，服务端按内容重新分类。
type Inbound struct {
	Type      string          `json:"type"`
	Content   string          `json:"content"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// Outbound 广播给所有客户端的消息信封。字段按 type 选择性出现。
// Timestamp 为客户端提供的不透明值，原样透传。
type Outbound struct {
	Type        string          `json:"type"`
	Sender      string          `json:"sender,omitempty"`
	Content     string          `json:"content"`
	Timestamp   json.RawMessage `json:"timestamp,omitempty"`
	ID          string          `json:"id,omitempty"`
	Target      string          `json:"target,omitempty"`
	OnlineUsers []string        `json:"online_users,omitempty"`
	RawContent  string          `json:"raw_content,omitempty"`
}
