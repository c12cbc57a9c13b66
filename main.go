package main

import (
	"context"
	"log"

	"ohayo/internal/config"
	"ohayo/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// サーバーを作成
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("サーバーの作成に失敗しました: %v", err)
	}

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
