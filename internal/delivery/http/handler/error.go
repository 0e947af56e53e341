package handler

import (
	"errors"
	"net/http"

	"go-online-store/internal/usecase"
	"go-online-store/pkg/response"
)

// writeUsecaseError maps a usecase failure onto the wire. Business failures
// keep the legacy one-status contract (400 + "Error: <detail>"); anything
// else is an infrastructure problem and renders as 500.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var be *usecase.BusinessError
	if errors.As(err, &be) {
		response.BadRequest(w, be.Message)
		return
	}
	response.InternalServerError(w)
}
