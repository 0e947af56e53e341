package response

import (
	"encoding/json"
	"net/http"
)

// MessageBody is the single-message envelope the legacy clients expect.
type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error renders the legacy error envelope {"message": "Error: <detail>"}.
// The "Error: " prefix is part of the response contract.
func Error(w http.ResponseWriter, statusCode int, detail string) {
	JSON(w, statusCode, MessageBody{Message: "Error: " + detail})
}

// BadRequest renders a business failure. The legacy surface collapses
// validation, not-found and conflict into one 400 status.
func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
