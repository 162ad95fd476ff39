// Package serverlist serves the chat server addresses offered on the login
// page, including a best-effort LAN address of this host.
package serverlist

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cndaip/chatroom/internal/config"
)

// Handler 下发可选服务器列表。
type Handler struct {
	cfg config.ServerConfig
}

// New 创建服务器列表处理器
func New(cfg config.ServerConfig) *Handler {
	return &Handler{cfg: cfg}
}

// RegisterRoutes 注册配置下发路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/config", h.handleConfig)
}

func (h *Handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	servers := append([]config.ServerEntry(nil), h.cfg.Servers...)

	if ip, ok := lanIP(); ok {
		address := fmt.Sprintf("ws://%s%s/ws", ip, listenPort(h.cfg.Addr))
		if !hasAddress(servers, ip) {
			servers = append(servers, config.ServerEntry{
				Name:    fmt.Sprintf("局域网 (%s)", ip),
				Address: address,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"servers": servers})
}

// lanIP 通过向外拨号探测本机局域网地址，不产生实际流量。
func lanIP() (string, bool) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", false
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", false
	}
	return addr.IP.String(), true
}

// listenPort 从监听地址中提取 ":port" 部分。
func listenPort(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}

func hasAddress(servers []config.ServerEntry, ip string) bool {
	for _, srv := range servers {
		if strings.Contains(srv.Address, ip) {
			return true
		}
	}
	return false
}
