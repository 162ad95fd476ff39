package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cndaip/chatroom/internal/config"
	"github.com/cndaip/chatroom/internal/handler"
	"github.com/cndaip/chatroom/internal/hub"
	"github.com/cndaip/chatroom/internal/model/city"
	"github.com/cndaip/chatroom/internal/service/ai"
	"github.com/cndaip/chatroom/internal/service/auth"
	"github.com/cndaip/chatroom/internal/service/news"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize credential store
	userStore, err := auth.OpenSQLite(cfg.Auth.DBPath)
	if err != nil {
		log.Fatalf("failed to open user store: %v", err)
	}
	defer userStore.Close()
	authSvc := auth.NewService(userStore)

	// Initialize AI service
	var completer hub.Completer
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - 请检查 Ark 模型相关环境变量")
		} else {
			log.Println("AI service initialized successfully")
			completer = aiSvc
		}
	} else {
		log.Println("Ark 凭证未配置，跳过 AI 功能初始化")
	}

	chatHub := hub.New(completer, news.StaticProvider{})
	cityStore := city.NewMemoryStore(city.Seed())

	router := handler.NewRouter(chatHub, authSvc, cityStore, cfg.Server)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("chatroom backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
