package static

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"sort"
	"time"
)

//go:embed templates/listing.gohtml
var templateFS embed.FS

// listingTemplate はディレクトリ一覧ページのテンプレート
var listingTemplate = template.Must(template.ParseFS(templateFS, "templates/listing.gohtml"))

// Entry はディレクトリ一覧の1項目を表す
type Entry struct {
	Name    string    // エントリ名（末尾スラッシュなし）
	IsDir   bool      // ディレクトリかどうか
	Size    int64     // ファイルサイズ（バイト）
	ModTime time.Time // 最終更新時刻
}

// Href はエントリへの相対リンクを返す
func (e Entry) Href() string {
	href := (&url.URL{Path: e.Name}).EscapedPath()
	if e.IsDir {
		href += "/"
	}
	return href
}

// Label はエントリの表示名を返す
func (e Entry) Label() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// listingData は一覧テンプレートに渡すデータ
type listingData struct {
	Path    string
	Entries []Entry
}

// serveListing はディレクトリの内容を名前順のHTML一覧として返す
func (h *Handler) serveListing(w http.ResponseWriter, r *http.Request, upath string, dir http.File) {
	infos, err := dir.Readdir(-1)
	if err != nil {
		http.Error(w, "500 internal server error", http.StatusInternalServerError)
		return
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Name:    info.Name(),
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	data := listingData{Path: upath, Entries: entries}
	if err := listingTemplate.Execute(w, data); err != nil {
		log.Printf("ディレクトリ一覧の出力に失敗: %v", err)
	}
}
