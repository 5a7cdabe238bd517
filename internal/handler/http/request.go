package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
)

// parsePage reads the page query value. An empty value means the first page.
func parsePage(w http.ResponseWriter, raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid query parameter", map[string]string{"page": "page must be a number"})
		return 0, false
	}
	return page, true
}
