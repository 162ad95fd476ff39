package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	authService "github.com/cndaip/chatroom/internal/service/auth"
)

// maxUsernameLength 与前端输入框限制保持一致。
const maxUsernameLength = 15

// Handler 注册与登录的HTTP处理器
type Handler struct {
	authSvc *authService.Service
}

// New 创建认证处理器
func New(authSvc *authService.Service) *Handler {
	return &Handler{authSvc: authSvc}
}

// RegisterRoutes 注册认证相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleRegister 处理用户注册
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondResult(w, false, "注册失败，请稍后重试")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		respondResult(w, false, "用户名和密码不能为空")
		return
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		respondResult(w, false, "用户名不能超过15个字符")
		return
	}

	created, err := h.authSvc.Register(r.Context(), username, payload.Password)
	if err != nil {
		respondResult(w, false, "注册失败，请稍后重试")
		return
	}
	if !created {
		respondResult(w, false, "用户名已存在")
		return
	}

	respondResult(w, true, "注册成功")
}

// handleLogin 处理用户登录
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload credentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondResult(w, false, "登录失败，请稍后重试")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		respondResult(w, false, "用户名和密码不能为空")
		return
	}

	ok, err := h.authSvc.Verify(r.Context(), username, payload.Password)
	if err != nil {
		respondResult(w, false, "登录失败，请稍后重试")
		return
	}
	if !ok {
		respondResult(w, false, "用户名或密码错误")
		return
	}

	respondResult(w, true, "登录成功")
}

// respondResult 发送统一的 success/message 响应体
func respondResult(w http.ResponseWriter, success bool, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": msg,
	})
}
