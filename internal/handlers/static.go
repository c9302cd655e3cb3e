package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"moodlog/internal/logging"
)

const (
	defaultDocument  = "/index.html"
	msgFileNotFound  = "File not found"
	fallbackMIMEType = "application/octet-stream"
)

var mimeTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".svg":  "image/svg+xml",
	".json": "application/json",
}

// StaticHandler serves files below root. Every read failure is a 404.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (sh *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/static.go ServeHTTP"

	name := r.URL.Path
	if name == "" || name == "/" {
		name = defaultDocument
	}
	name = path.Clean("/" + name)

	content, err := os.ReadFile(filepath.Join(sh.root, filepath.FromSlash(name)))
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Str("op", op).Str("path", name).Msg("static file unavailable")
		respondText(w, http.StatusNotFound, msgFileNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType(name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func contentType(name string) string {
	if mime, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return mime
	}
	return fallbackMIMEType
}
