// Package response writes JSON API responses in a single envelope shape.
package response

import (
	"encoding/json"
	"net/http"
	"time"
)

type JSONResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, JSONResponse{
		Success:   true,
		Data:      payload,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func RespondError(w http.ResponseWriter, status int, msg string) {
	RespondErrorWithData(w, status, msg, nil)
}

// RespondErrorWithData reports a failure while still returning a payload,
// e.g. the delivery record of a rejected message.
func RespondErrorWithData(w http.ResponseWriter, status int, msg string, payload interface{}) {
	writeJSON(w, status, JSONResponse{
		Success: false,
		Data:    payload,
		Error: &ErrorBody{
			Code:    status,
			Message: msg,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
