package static

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"ohayo/internal/config"
)

// Handler はルートディレクトリ配下のファイルを配信するHTTPハンドラ
type Handler struct {
	root      string // 絶対パスに解決済みのルートディレクトリ
	fs        http.FileSystem
	indexFile string
	listing   bool
}

// New は設定から新しいHandlerを作成する
// ルートディレクトリが存在しない場合はエラーを返す
func New(cfg config.StaticConfig) (*Handler, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの解決に失敗: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの確認に失敗: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ルートがディレクトリではありません: %s", root)
	}

	return &Handler{
		root:      root,
		fs:        http.Dir(root),
		indexFile: cfg.IndexFile,
		listing:   cfg.Listing,
	}, nil
}

// Root は配信ルートディレクトリの絶対パスを返す
func (h *Handler) Root() string {
	return h.root
}

// ServeHTTP はリクエストパスをルート配下のファイルへ解決して配信する
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
		return
	}

	upath := r.URL.Path
	if strings.ContainsRune(upath, 0) {
		http.Error(w, "400 bad request", http.StatusBadRequest)
		return
	}
	// 先頭スラッシュを補ってから正規化する
	// `..` を含むパスもここでルート配下に畳み込まれる
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}
	upath = path.Clean(upath)

	f, err := h.fs.Open(upath)
	if err != nil {
		h.replyError(w, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		h.replyError(w, err)
		return
	}

	if info.IsDir() {
		h.serveDir(w, r, upath, f)
		return
	}

	h.serveFile(w, r, upath, f, info)
}

// serveDir はディレクトリへのリクエストを処理する
func (h *Handler) serveDir(w http.ResponseWriter, r *http.Request, upath string, dir http.File) {
	// ディレクトリは末尾スラッシュ付きのURLに正規化する
	if !strings.HasSuffix(r.URL.Path, "/") {
		localRedirect(w, r, path.Base(upath)+"/")
		return
	}

	// インデックスファイルがあれば優先する
	indexPath := path.Join(upath, h.indexFile)
	if idx, err := h.fs.Open(indexPath); err == nil {
		defer func() { _ = idx.Close() }()
		if info, err := idx.Stat(); err == nil && !info.IsDir() {
			h.serveFile(w, r, indexPath, idx, info)
			return
		}
	}

	if !h.listing {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}

	h.serveListing(w, r, upath, dir)
}

// serveFile は通常ファイルを配信する
// HEAD・Range・条件付きリクエストの処理は http.ServeContent に委ねる
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, upath string, f http.File, info fs.FileInfo) {
	if w.Header().Get("Content-Type") == "" {
		ctype := mime.TypeByExtension(path.Ext(upath))
		if ctype == "" {
			// 拡張子から判定できない場合は内容から推定する
			if mtype, err := mimetype.DetectReader(f); err == nil {
				ctype = mtype.String()
			}
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				http.Error(w, "500 internal server error", http.StatusInternalServerError)
				return
			}
		}
		if ctype != "" {
			w.Header().Set("Content-Type", ctype)
		}
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// replyError はファイルオープン・Stat時のエラーをHTTPステータスへ変換する
func (h *Handler) replyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.Error(w, "404 page not found", http.StatusNotFound)
	case errors.Is(err, fs.ErrPermission):
		http.Error(w, "403 forbidden", http.StatusForbidden)
	default:
		http.Error(w, "500 internal server error", http.StatusInternalServerError)
	}
}

// localRedirect は同一ディレクトリ内への相対リダイレクトを返す
func localRedirect(w http.ResponseWriter, r *http.Request, newPath string) {
	if q := r.URL.RawQuery; q != "" {
		newPath += "?" + q
	}
	w.Header().Set("Location", newPath)
	w.WriteHeader(http.StatusMovedPermanently)
}
