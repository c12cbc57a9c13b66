// Package config はアプリケーション全体の設定管理を担う
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Static StaticConfig `yaml:"static"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout     time.Duration `yaml:"read_timeout"`     // 読み込みタイムアウト
	WriteTimeout    time.Duration `yaml:"write_timeout"`    // 書き込みタイムアウト
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // シャットダウン待ちの上限
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	Root      string `yaml:"root"`       // 配信ルートディレクトリ
	IndexFile string `yaml:"index_file"` // ディレクトリのインデックスファイル名
	Listing   bool   `yaml:"listing"`    // ディレクトリ一覧の表示を許可するか
}

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    0, // 大きなファイルの配信用にタイムアウト無効化
			ShutdownTimeout: 5 * time.Second,
		},
		Static: StaticConfig{
			Root:      ".",
			IndexFile: "index.html",
			Listing:   true,
		},
	}
}

// Load は設定を読み込む
// デフォルト値に環境変数による上書きを適用する
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// LoadFile はYAMLファイルから設定を読み込む
// 優先順位はデフォルト値 < ファイル < 環境変数
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// applyEnv は環境変数による上書きを適用する
func (c *Config) applyEnv() {
	c.Server.Host = getEnvOrDefault("SERVER_HOST", c.Server.Host)
	c.Server.Port = getEnvAsIntOrDefault("SERVER_PORT", c.Server.Port)
	c.Static.Root = getEnvOrDefault("STATIC_ROOT", c.Static.Root)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証（ポート0はエフェメラルポートとして許可）
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 {
		return fmt.Errorf("無効な読み込みタイムアウト: %v", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("無効な書き込みタイムアウト: %v", c.Server.WriteTimeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("無効なシャットダウンタイムアウト: %v", c.Server.ShutdownTimeout)
	}

	// 配信設定の検証
	if c.Static.Root == "" {
		return fmt.Errorf("配信ルートディレクトリが設定されていません")
	}
	if c.Static.IndexFile == "" {
		return fmt.Errorf("インデックスファイル名が設定されていません")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
