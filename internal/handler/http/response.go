// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"

	"github.com/mooons/mcphub/internal/logger"
	"github.com/mooons/mcphub/models"
)

// envelope is the standard response shape of the admin API.
type envelope struct {
	Success    bool                   `json:"success"`
	Data       any                    `json:"data,omitempty"`
	Pagination *models.PaginationInfo `json:"pagination,omitempty"`
	Message    string                 `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("encode response")
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, status int, data any, pagination *models.PaginationInfo) {
	writeJSON(w, r, status, envelope{Success: true, Data: data, Pagination: pagination})
}

// writeRejected answers 200 with success == false, the shape the gateway
// uses for requests it understood but refused.
func writeRejected(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusOK, envelope{Success: false, Message: message})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, envelope{Success: false, Message: message})
}
