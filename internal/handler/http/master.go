package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-admin-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-admin-go/internal/handler/http/response"
)

type MasterHandler interface {
	Options(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct{}

func NewMasterHandler() MasterHandler {
	return &masterHandlerImpl{}
}

// Options implements MasterHandler.
func (h *masterHandlerImpl) Options(w http.ResponseWriter, r *http.Request) {
	response.Success(w, fixtures.GetOptions())
}
