package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

type FileHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	store storage.FileStorage
}

func NewFileHandler(store storage.FileStorage) FileHandler {
	return &fileHandlerImpl{store: store}
}

// Download implements FileHandler.
func (h *fileHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")

	rc, err := h.store.Download(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+path.Base(key)+"\"")

	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("failed to stream file", "key", key, "error", err)
	}
}
