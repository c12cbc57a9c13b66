package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ohayo/internal/config"
	"ohayo/internal/static"
)

// startupGreeting はバインド成功時に標準出力へ印字する挨拶
const startupGreeting = "good morning"

// Status はサーバーの動作状態を表す
type Status string

const (
	StatusStarting Status = "starting" // バインド処理中
	StatusRunning  Status = "running"  // リクエスト受付中
	StatusStopped  Status = "stopped"  // 停止済み
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config      *config.Config
	httpServer  *http.Server
	fileHandler *static.Handler

	instanceID string
	startedAt  time.Time
	stdout     io.Writer

	mu       sync.RWMutex
	listener net.Listener
	status   Status
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) (*Server, error) {
	fileHandler, err := static.New(cfg.Static)
	if err != nil {
		return nil, fmt.Errorf("静的ファイルハンドラの作成に失敗: %w", err)
	}

	s := &Server{
		config:      cfg,
		fileHandler: fileHandler,
		instanceID:  uuid.NewString(),
		startedAt:   time.Now(),
		stdout:      os.Stdout,
		status:      StatusStarting,
	}

	s.httpServer = &http.Server{
		Handler:      s.setupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s, nil
}

// setupRouter はHTTPルートを設定する
func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// ヘルスチェックエンドポイント
	engine.GET("/health", s.handleHealth)

	// APIエンドポイント
	engine.GET("/api/status", s.handleStatus)

	// 定義済みルート以外はすべて静的ファイル配信へ委譲する
	engine.NoRoute(gin.WrapH(s.fileHandler))

	return engine
}

// Start はサーバーを起動する
// バインドに成功すると挨拶を印字し、コンテキストのキャンセルか
// シグナルを受信するまでリクエストを受け付ける
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("アドレス %s のバインドに失敗: %w", s.config.ServerAddress(), err)
	}

	s.mu.Lock()
	s.listener = listener
	s.status = StatusRunning
	s.mu.Unlock()

	// バインド成功後・受付開始前に挨拶を印字する
	fmt.Fprintln(s.stdout, startupGreeting)

	// サーバーを別ゴルーチンで起動
	serveErrCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-serveErrCh:
		s.setStatus(StatusStopped)
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	s.setStatus(StatusStopped)
	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}

// Addr は実際にバインドされたアドレスを返す
// 未起動の場合はnilを返す
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// getStatus は現在の動作状態を返す
func (s *Server) getStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// setStatus は動作状態を更新する
func (s *Server) setStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}
