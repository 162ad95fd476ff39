package city

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	cityModel "github.com/cndaip/chatroom/internal/model/city"
)

// Handler 城市查询的HTTP处理器，提供城市名称到 adcode 的转换。
type Handler struct {
	cities cityModel.Store
}

// New 创建城市处理器
func New(cities cityModel.Store) *Handler {
	return &Handler{cities: cities}
}

// RegisterRoutes 注册城市查询路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/city", h.handleLookup)
}

// handleLookup 按名称模糊查询城市
func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondLookup(w, false, "缺少城市名称参数", nil)
		return
	}

	matched := h.cities.Find(name)
	if len(matched) == 0 {
		respondLookup(w, false, fmt.Sprintf("未找到与'%s'匹配的城市", name), nil)
		return
	}

	respondLookup(w, true, "城市查询成功", matched)
}

func respondLookup(w http.ResponseWriter, success bool, msg string, data []cityModel.City) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": msg,
		"data":    data,
	})
}
