// Package ws exposes the chat websocket endpoint and the nickname
// availability probe.
package ws

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/cndaip/chatroom/internal/hub"
)

// 握手拒绝原因，与客户端提示文案保持一致。
const (
	reasonNicknameRequired = "请输入昵称"
	reasonNicknameTaken    = "该昵称已被使用"
)

// Handler upgrades chat connections and feeds them to the hub.
type Handler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

// New creates the websocket handler.
func New(h *hub.Hub) *Handler {
	return &Handler{
		hub: h,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册 websocket 入口。
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleChat)
}

// RegisterAPIRoutes 注册连接前的昵称可用性检查。
func (h *Handler) RegisterAPIRoutes(r chi.Router) {
	r.Get("/chat/nickname", h.handleNicknameCheck)
}

// handleChat 建立聊天连接。昵称缺失或被占用时以 1008 关闭；占用判定最终由
// 注册的原子性裁决，而非这里的预检查。
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed: %v", err)
		return
	}

	if nickname == "" {
		closeWithReason(conn, reasonNicknameRequired)
		return
	}

	client := hub.NewClient(nickname, conn)
	if err := h.hub.Join(client); err != nil {
		closeWithReason(conn, reasonNicknameTaken)
		return
	}

	h.hub.Serve(client)
}

func closeWithReason(conn *websocket.Conn, reason string) {
	frame := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteMessage(websocket.CloseMessage, frame)
	_ = conn.Close()
}

// handleNicknameCheck 连接前的昵称占用预检查，仅供界面提示。
func (h *Handler) handleNicknameCheck(w http.ResponseWriter, r *http.Request) {
	nickname := r.URL.Query().Get("nickname")
	if nickname == "" {
		respondJSON(w, http.StatusOK, map[string]any{
			"available": false,
			"message":   reasonNicknameRequired,
		})
		return
	}

	if h.hub.Online(nickname) {
		respondJSON(w, http.StatusOK, map[string]any{
			"available": false,
			"message":   reasonNicknameTaken,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"available": true,
		"message":   "昵称可用",
	})
}
