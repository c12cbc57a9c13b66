// Package static ルートディレクトリ配下の静的ファイル配信を担う
//
// # 責務
// - リクエストパスの正規化とルートディレクトリ配下への解決
// - 通常ファイルの配信（Content-Type推定・Range/条件付きリクエスト対応）
// - インデックスファイルの解決
// - ディレクトリ一覧（HTML）の生成
// - ルート外への到達を許さないパス解決
//
// # 使い分け
// このパッケージは以下の場合に使用する：
// - 指定したディレクトリをそのままHTTPで公開したい
// - サーバー本体から配信ルートを切り離してテストしたい
//
// # 仕様
// - GET / HEAD のみ受け付ける（それ以外は405）
// - パスは path.Clean で正規化され、`..` でルート外に出ることはできない
// - ディレクトリはまず末尾スラッシュへリダイレクトし、
//   インデックスファイルがあればそれを、なければ一覧を返す
// - Content-Type は拡張子から、判定できない場合は内容から推定する
package static
