// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		reason   string
		message  string
		expected ErrorResponse
	}{
		{
			name:     "bad request",
			status:   http.StatusBadRequest,
			reason:   "invitation_expired",
			message:  "invitation has expired",
			expected: ErrorResponse{Status: http.StatusBadRequest, Message: "invitation has expired", Error: "invitation_expired"},
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			reason:   "server_error",
			message:  "internal error",
			expected: ErrorResponse{Status: http.StatusInternalServerError, Message: "internal error", Error: "server_error"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteError(w, test.status, test.reason, test.message)

			if w.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %q", ct)
			}

			var body ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if !reflect.DeepEqual(body, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, body)
			}
		})
	}
}
