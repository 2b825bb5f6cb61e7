// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body of every non-2xx API answer.
// Error carries the machine-readable reason code.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SuccessResponse is the minimal body of mutating endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes v as the JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an ErrorResponse carrying reason as its error code.
func WriteError(w http.ResponseWriter, status int, reason, message string) {
	WriteJSON(
		w,
		status,
		ErrorResponse{
			Status:  status,
			Message: message,
			Error:   reason,
		},
	)
}
