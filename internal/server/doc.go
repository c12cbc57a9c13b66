// Package server は、HTTPサーバーのライフサイクル管理とルーティングを担う
//
// このパッケージは、リッスンソケットのバインド、起動メッセージの出力、
// リクエストの受付、グレースフルシャットダウンを担当します。
//
// 責務:
//   - リッスンソケットのバインドとHTTPサーバーの起動
//   - 起動成功時の挨拶（good morning）の標準出力への印字
//   - ヘルスチェック・ステータスエンドポイントの提供
//   - 未定義パスの静的ファイル配信への委譲
//   - シグナル・コンテキストによるグレースフルシャットダウン
//
// 仕様:
//   - ルーティングはgin-gonic/ginを使用
//   - バインド成功後・受付開始前に起動メッセージを印字する
//   - SIGINT/SIGTERM またはコンテキストのキャンセルで停止する
//   - 接続ごとの処理はnet/httpのゴルーチンモデルに従い並行に行われる
package server
