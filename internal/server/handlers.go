package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthStatus はヘルスチェック結果の状態を表す
type HealthStatus string

// Healthy はサーバーが正常であることを表す
const Healthy HealthStatus = "healthy"

// HealthResponse はヘルスチェックエンドポイントのレスポンス
type HealthResponse struct {
	Status    HealthStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

// StatusResponse はシステム状態エンドポイントのレスポンス
type StatusResponse struct {
	Status    Status     `json:"status"`
	Server    ServerInfo `json:"server"`
	Static    StaticInfo `json:"static"`
	Timestamp time.Time  `json:"timestamp"`
}

// ServerInfo はサーバーの待ち受け情報
type ServerInfo struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	StartedAt time.Time `json:"started_at"`
}

// StaticInfo は静的ファイル配信の情報
type StaticInfo struct {
	Root    string `json:"root"`
	Listing bool   `json:"listing"`
}

// handleHealth はヘルスチェックエンドポイントの実装
func (s *Server) handleHealth(c *gin.Context) {
	response := HealthResponse{
		Status:    Healthy,
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// handleStatus はシステム状態取得エンドポイントの実装
func (s *Server) handleStatus(c *gin.Context) {
	response := StatusResponse{
		Status: s.getStatus(),
		Server: ServerInfo{
			ID:        s.instanceID,
			Host:      s.config.Server.Host,
			Port:      s.config.Server.Port,
			StartedAt: s.startedAt,
		},
		Static: StaticInfo{
			Root:    s.fileHandler.Root(),
			Listing: s.config.Static.Listing,
		},
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}
