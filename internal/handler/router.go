package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cndaip/chatroom/internal/config"
	authHandler "github.com/cndaip/chatroom/internal/handler/auth"
	cityHandler "github.com/cndaip/chatroom/internal/handler/city"
	"github.com/cndaip/chatroom/internal/handler/serverlist"
	"github.com/cndaip/chatroom/internal/handler/ws"
	"github.com/cndaip/chatroom/internal/hub"
	middlewarePkg "github.com/cndaip/chatroom/internal/middleware"
	cityModel "github.com/cndaip/chatroom/internal/model/city"
	authService "github.com/cndaip/chatroom/internal/service/auth"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatHub *hub.Hub, authSvc *authService.Service, cities cityModel.Store, serverCfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	wsHandler := ws.New(chatHub)

	r.Route("/api", func(api chi.Router) {
		authHandler.New(authSvc).RegisterRoutes(api)
		cityHandler.New(cities).RegisterRoutes(api)
		serverlist.New(serverCfg).RegisterRoutes(api)
		wsHandler.RegisterAPIRoutes(api)
	})

	wsHandler.RegisterRoutes(r)

	return r
}
