// Package main はohayoサーバーコマンドの実装です
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"ohayo/internal/config"
	"ohayo/internal/server"
)

func main() {
	// コマンドラインオプション
	var (
		host       = flag.String("host", "", "サーバーのホスト (デフォルト: 0.0.0.0)")
		port       = flag.Int("port", 0, "サーバーのポート (デフォルト: 8000)")
		root       = flag.String("root", "", "配信ルートディレクトリ (デフォルト: カレントディレクトリ)")
		configPath = flag.String("config", "", "設定ファイル(YAML)のパス")
		help       = flag.Bool("help", false, "ヘルプを表示")
	)

	flag.Parse()

	// ヘルプ表示
	if *help {
		fmt.Println("ohayo")
		fmt.Println()
		fmt.Println("使用方法:")
		fmt.Println("  server [オプション]")
		fmt.Println()
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// 設定を読み込む
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// コマンドラインオプションで設定を上書き
	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *root != "" {
		cfg.Static.Root = *root
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("設定の検証に失敗しました: %v", err)
	}

	// サーバーを作成
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	log.Printf("ohayo サーバーを起動します: %s", cfg.ServerAddress())
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
