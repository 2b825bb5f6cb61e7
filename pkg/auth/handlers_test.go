// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/studio-service/internal/http/types"
	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/reasons"
	"github.com/canonical/studio-service/internal/tracing"
	studiotypes "github.com/canonical/studio-service/internal/types"
	"github.com/canonical/studio-service/pkg/authentication"
	"github.com/canonical/studio-service/pkg/tokens"
)

var testPrincipal = authentication.Principal{UserID: "user-1", TenantID: "tenant-1", SessionID: "session-1"}

// authenticated stands in for the session middleware and always admits testPrincipal.
func authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(r.Context(), testPrincipal)))
	})
}

func newTestMux(svc ServiceInterface, cookies CookieBinderInterface) *chi.Mux {
	api := NewAPI(svc, cookies, authenticated, tracing.NewNoopTracer(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	return mux
}

func decodeError(t *testing.T, res *http.Response) types.ErrorResponse {
	t.Helper()

	var body types.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return body
}

func TestAPI_MagicLink(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedReason string
		validateResp   func(*testing.T, MagicLinkResponse)
	}{
		{
			name: "link echoed in development",
			body: `{"email":"a@x.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RequestMagicLink(gomock.Any(), "a@x.com").
					Return(&MagicLinkResult{Purpose: tokens.PurposeSignup, Link: "http://localhost/auth/verify?token=t"}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp MagicLinkResponse) {
				if !resp.Success || resp.Link == "" || resp.Type != "signup" {
					t.Errorf("unexpected response %+v", resp)
				}
			},
		},
		{
			name: "link hidden in production",
			body: `{"email":"a@x.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RequestMagicLink(gomock.Any(), "a@x.com").
					Return(&MagicLinkResult{Purpose: tokens.PurposeLogin}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResp: func(t *testing.T, resp MagicLinkResponse) {
				if !resp.Success || resp.Link != "" || resp.Type != "" {
					t.Errorf("unexpected response %+v", resp)
				}
			},
		},
		{
			name:           "malformed body",
			body:           `not-json`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: reasons.InvalidRequest,
		},
		{
			name:           "invalid email",
			body:           `{"email":"not-an-email"}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedReason: reasons.InvalidRequest,
		},
		{
			name: "rate limited",
			body: `{"email":"a@x.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RequestMagicLink(gomock.Any(), "a@x.com").Return(nil, reasons.ErrTooManyRequests)
			},
			expectedStatus: http.StatusTooManyRequests,
			expectedReason: reasons.TooManyRequests,
		},
		{
			name: "delivery failure",
			body: `{"email":"a@x.com"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RequestMagicLink(gomock.Any(), "a@x.com").Return(nil, errors.New("smtp down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedReason: reasons.ServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockCookies := NewMockCookieBinderInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/magic-link", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			newTestMux(mockService, mockCookies).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}

			if tt.expectedReason != "" {
				if got := decodeError(t, res).Error; got != tt.expectedReason {
					t.Errorf("expected reason %s, got %s", tt.expectedReason, got)
				}
			}

			if tt.validateResp != nil {
				var resp MagicLinkResponse
				if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.validateResp(t, resp)
			}
		})
	}
}

func TestAPI_Verify(t *testing.T) {
	tests := []struct {
		name             string
		url              string
		setupMocks       func(*MockServiceInterface, *MockCookieBinderInterface)
		expectedLocation string
	}{
		{
			name: "signup lands on onboarding",
			url:  "/auth/verify?token=good",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().VerifyMagicLink(gomock.Any(), "good", gomock.Any()).Return(&LoginResult{
					Tokens:     &studiotypes.SessionTokens{AccessToken: "access", RefreshToken: "refresh", SessionID: "session-1"},
					RedirectTo: OnboardingPath,
					Signup:     true,
				}, nil)
				cookies.EXPECT().SetAuthCookies(gomock.Any(), "access", "refresh")
			},
			expectedLocation: OnboardingPath,
		},
		{
			name: "missing token",
			url:  "/auth/verify",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().VerifyMagicLink(gomock.Any(), "", gomock.Any()).Return(nil, reasons.ErrMissingToken)
			},
			expectedLocation: "/login?error=missing_token",
		},
		{
			name: "expired token",
			url:  "/auth/verify?token=old",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().VerifyMagicLink(gomock.Any(), "old", gomock.Any()).Return(nil, reasons.ErrInvalidToken)
			},
			expectedLocation: "/login?error=invalid_token",
		},
		{
			name: "server failure",
			url:  "/auth/verify?token=good",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().VerifyMagicLink(gomock.Any(), "good", gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedLocation: "/login?error=server_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockCookies := NewMockCookieBinderInterface(ctrl)
			tt.setupMocks(mockService, mockCookies)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			newTestMux(mockService, mockCookies).ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("expected status %d, got %d", http.StatusFound, w.Code)
			}

			if loc := w.Header().Get("Location"); loc != tt.expectedLocation {
				t.Errorf("expected redirect to %s, got %s", tt.expectedLocation, loc)
			}
		})
	}
}

func TestAPI_Refresh(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface, *MockCookieBinderInterface)
		expectedStatus int
		expectedReason string
	}{
		{
			name: "success",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				cookies.EXPECT().RefreshToken(gomock.Any()).Return("refresh")
				svc.EXPECT().Refresh(gomock.Any(), "refresh").
					Return(&studiotypes.SessionTokens{AccessToken: "new-access", RefreshToken: "refresh"}, nil)
				cookies.EXPECT().SetAuthCookies(gomock.Any(), "new-access", "refresh")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no refresh cookie",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				cookies.EXPECT().RefreshToken(gomock.Any()).Return("")
				svc.EXPECT().Refresh(gomock.Any(), "").Return(nil, reasons.ErrMissingToken)
				cookies.EXPECT().ClearAuthCookies(gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: reasons.MissingToken,
		},
		{
			name: "session revoked",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				cookies.EXPECT().RefreshToken(gomock.Any()).Return("refresh")
				svc.EXPECT().Refresh(gomock.Any(), "refresh").Return(nil, reasons.ErrSessionInactive)
				cookies.EXPECT().ClearAuthCookies(gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
			expectedReason: reasons.SessionInactive,
		},
		{
			name: "server failure keeps cookies",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				cookies.EXPECT().RefreshToken(gomock.Any()).Return("refresh")
				svc.EXPECT().Refresh(gomock.Any(), "refresh").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedReason: reasons.ServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockCookies := NewMockCookieBinderInterface(ctrl)
			tt.setupMocks(mockService, mockCookies)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			w := httptest.NewRecorder()

			newTestMux(mockService, mockCookies).ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}

			if tt.expectedReason != "" {
				if got := decodeError(t, res).Error; got != tt.expectedReason {
					t.Errorf("expected reason %s, got %s", tt.expectedReason, got)
				}
			}
		})
	}
}

func TestAPI_Logout(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMocks func(*MockServiceInterface, *MockCookieBinderInterface)
	}{
		{
			name: "logout",
			path: "/auth/logout",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().Logout(gomock.Any(), "access", "refresh").Return(nil)
			},
		},
		{
			name: "logout survives storage failure",
			path: "/auth/logout",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().Logout(gomock.Any(), "access", "refresh").Return(errors.New("db down"))
			},
		},
		{
			name: "logout all",
			path: "/auth/logout-all",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().LogoutAll(gomock.Any(), "access", "refresh").Return(int64(2), nil)
			},
		},
		{
			name: "logout all survives storage failure",
			path: "/auth/logout-all",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().LogoutAll(gomock.Any(), "access", "refresh").Return(int64(0), errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockCookies := NewMockCookieBinderInterface(ctrl)

			mockCookies.EXPECT().AccessToken(gomock.Any()).Return("access")
			mockCookies.EXPECT().RefreshToken(gomock.Any()).Return("refresh")
			mockCookies.EXPECT().ClearAuthCookies(gomock.Any())
			tt.setupMocks(mockService, mockCookies)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			w := httptest.NewRecorder()

			newTestMux(mockService, mockCookies).ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
			}
		})
	}
}

func TestAPI_Me(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Me(gomock.Any(), testPrincipal.UserID).Return(&Profile{
					User:   &studiotypes.User{ID: "user-1"},
					Tenant: &studiotypes.Tenant{ID: "tenant-1"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "user removed",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Me(gomock.Any(), testPrincipal.UserID).Return(nil, reasons.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "server failure",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Me(gomock.Any(), testPrincipal.UserID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			w := httptest.NewRecorder()

			newTestMux(mockService, NewMockCookieBinderInterface(ctrl)).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAPI_ListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListSessions(gomock.Any(), testPrincipal.UserID).Return([]*studiotypes.Session{
		{ID: "session-1", UserAgent: "firefox"},
		{ID: "session-2", UserAgent: "curl"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/sessions", nil)
	w := httptest.NewRecorder()

	newTestMux(mockService, NewMockCookieBinderInterface(ctrl)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var body struct {
		Sessions []SessionResponse `json:"sessions"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(body.Sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(body.Sessions))
	}

	if !body.Sessions[0].Current || body.Sessions[1].Current {
		t.Errorf("expected only session-1 to be current, got %+v", body.Sessions)
	}
}

func TestAPI_RevokeSession(t *testing.T) {
	tests := []struct {
		name           string
		sessionID      string
		setupMocks     func(*MockServiceInterface, *MockCookieBinderInterface)
		expectedStatus int
	}{
		{
			name:      "other device",
			sessionID: "session-2",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().RevokeSession(gomock.Any(), testPrincipal.UserID, "session-2").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "current device clears cookies",
			sessionID: "session-1",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().RevokeSession(gomock.Any(), testPrincipal.UserID, "session-1").Return(nil)
				cookies.EXPECT().ClearAuthCookies(gomock.Any())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "not owned",
			sessionID: "session-9",
			setupMocks: func(svc *MockServiceInterface, cookies *MockCookieBinderInterface) {
				svc.EXPECT().RevokeSession(gomock.Any(), testPrincipal.UserID, "session-9").Return(ErrSessionNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockCookies := NewMockCookieBinderInterface(ctrl)
			tt.setupMocks(mockService, mockCookies)

			req := httptest.NewRequest(http.MethodDelete, "/auth/sessions/"+tt.sessionID, nil)
			w := httptest.NewRecorder()

			newTestMux(mockService, mockCookies).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
