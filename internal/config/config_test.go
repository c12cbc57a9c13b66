package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestConfigLoad は設定の読み込みをテストする
func TestConfigLoad(t *testing.T) {
	// 設定を読み込む
	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// 基本的な設定値を検証
	if cfg == nil {
		t.Fatal("設定がnilです")
	}

	// サーバー設定の検証
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("デフォルトホストが一致しません: got %s, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("デフォルトポートが一致しません: got %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		t.Error("読み込みタイムアウトが設定されていません")
	}
	// WriteTimeout は 0（無効）でも正常
	if cfg.Server.WriteTimeout < 0 {
		t.Error("書き込みタイムアウトが負の値です")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		t.Error("シャットダウンタイムアウトが設定されていません")
	}

	// 配信設定の検証
	if cfg.Static.Root != "." {
		t.Errorf("デフォルトの配信ルートが一致しません: got %s, want .", cfg.Static.Root)
	}
	if cfg.Static.IndexFile != "index.html" {
		t.Errorf("デフォルトのインデックスファイルが一致しません: got %s, want index.html", cfg.Static.IndexFile)
	}
	if !cfg.Static.Listing {
		t.Error("ディレクトリ一覧がデフォルトで有効になっていません")
	}
}

// TestConfigValidation は設定の検証をテストする
func TestConfigValidation(t *testing.T) {
	testCases := []struct {
		name      string
		config    *Config
		expectErr bool
	}{
		{
			name:      "正常な設定",
			config:    Default(),
			expectErr: false,
		},
		{
			name: "エフェメラルポート",
			config: func() *Config {
				cfg := Default()
				cfg.Server.Port = 0
				return cfg
			}(),
			expectErr: false,
		},
		{
			name: "無効なポート番号",
			config: func() *Config {
				cfg := Default()
				cfg.Server.Port = 99999
				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "負のポート番号",
			config: func() *Config {
				cfg := Default()
				cfg.Server.Port = -1
				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "配信ルートなし",
			config: func() *Config {
				cfg := Default()
				cfg.Static.Root = ""
				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "インデックスファイル名なし",
			config: func() *Config {
				cfg := Default()
				cfg.Static.IndexFile = ""
				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "負の読み込みタイムアウト",
			config: func() *Config {
				cfg := Default()
				cfg.Server.ReadTimeout = -1 * time.Second
				return cfg
			}(),
			expectErr: true,
		},
		{
			name: "シャットダウンタイムアウトなし",
			config: func() *Config {
				cfg := Default()
				cfg.Server.ShutdownTimeout = 0
				return cfg
			}(),
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr && err == nil {
				t.Error("エラーが期待されましたが、エラーが発生しませんでした")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("予期しないエラーが発生しました: %v", err)
			}
		})
	}
}

// TestServerAddress はサーバーアドレスの生成をテストする
func TestServerAddress(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "192.168.1.100",
			Port: 9090,
		},
	}

	expected := "192.168.1.100:9090"
	actual := cfg.ServerAddress()

	if actual != expected {
		t.Errorf("サーバーアドレスが一致しません: got %s, want %s", actual, expected)
	}
}

// TestEnvironmentVariables は環境変数の処理をテストする
// 注意: このテストは環境変数を変更するため、parallelは使わない
func TestEnvironmentVariables(t *testing.T) {
	// テスト用の環境変数を設定
	originalHost := os.Getenv("SERVER_HOST")
	originalPort := os.Getenv("SERVER_PORT")
	originalRoot := os.Getenv("STATIC_ROOT")

	defer func() {
		// テスト後に環境変数を復元
		_ = os.Setenv("SERVER_HOST", originalHost)
		_ = os.Setenv("SERVER_PORT", originalPort)
		_ = os.Setenv("STATIC_ROOT", originalRoot)
	}()

	// 環境変数を設定
	_ = os.Setenv("SERVER_HOST", "test.example.com")
	_ = os.Setenv("SERVER_PORT", "9999")
	_ = os.Setenv("STATIC_ROOT", "/var/www")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "test.example.com" {
		t.Errorf("環境変数のホストが反映されていません: got %s, want test.example.com", cfg.Server.Host)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("環境変数のポートが反映されていません: got %d, want 9999", cfg.Server.Port)
	}
	if cfg.Static.Root != "/var/www" {
		t.Errorf("環境変数の配信ルートが反映されていません: got %s, want /var/www", cfg.Static.Root)
	}
}

// TestLoadFile はYAMLファイルからの読み込みをテストする
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := []byte(`server:
  host: 127.0.0.1
  port: 9000
static:
  root: /srv/files
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("設定ファイルの作成に失敗しました: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("設定ファイルの読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("ファイルのホストが反映されていません: got %s, want 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("ファイルのポートが反映されていません: got %d, want 9000", cfg.Server.Port)
	}
	if cfg.Static.Root != "/srv/files" {
		t.Errorf("ファイルの配信ルートが反映されていません: got %s, want /srv/files", cfg.Static.Root)
	}

	// ファイルに書かれていない項目はデフォルト値のまま
	if cfg.Static.IndexFile != "index.html" {
		t.Errorf("デフォルトのインデックスファイルが保持されていません: got %s", cfg.Static.IndexFile)
	}
	if !cfg.Static.Listing {
		t.Error("デフォルトのディレクトリ一覧設定が保持されていません")
	}
}

// TestLoadFileNotFound は存在しない設定ファイルの扱いをテストする
func TestLoadFileNotFound(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("存在しないファイルでエラーが発生しませんでした")
	}
}
