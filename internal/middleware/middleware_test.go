package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func captureSession(got *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetSessionID(r.Context())
	})
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("expected %s cookie to be set", SessionCookieName)
	return nil
}

func TestSessions_IssuesNewSession(t *testing.T) {
	s := NewSessions([]byte("test-secret"), false)
	var got uuid.UUID

	rr := httptest.NewRecorder()
	s.Middleware(captureSession(&got)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == uuid.Nil {
		t.Fatalf("expected a session id in the context")
	}
	cookie := sessionCookie(t, rr)
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	id, err := s.ParseToken(cookie.Value)
	if err != nil || id != got {
		t.Fatalf("cookie does not carry the session id: id=%s err=%v", id, err)
	}
}

func TestSessions_ReusesValidCookie(t *testing.T) {
	s := NewSessions([]byte("test-secret"), false)
	existing := uuid.New()
	token, err := s.GenerateToken(existing)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	var got uuid.UUID
	s.Middleware(captureSession(&got)).ServeHTTP(httptest.NewRecorder(), req)

	if got != existing {
		t.Fatalf("expected session %s, got %s", existing, got)
	}
}

func TestSessions_RejectsForeignSignature(t *testing.T) {
	other := NewSessions([]byte("other-secret"), false)
	token, _ := other.GenerateToken(uuid.New())

	s := NewSessions([]byte("test-secret"), false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	if _, ok := s.FromRequest(req); ok {
		t.Fatalf("token signed with another secret must be rejected")
	}

	var got uuid.UUID
	s.Middleware(captureSession(&got)).ServeHTTP(httptest.NewRecorder(), req)
	if got == uuid.Nil {
		t.Fatalf("expected a fresh session id")
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("expected generated request id to be echoed, got %q / %q", seen, rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "abc" {
		t.Fatalf("expected incoming request id to be kept, got %q", seen)
	}
}

func TestCORS(t *testing.T) {
	h := CORS("http://localhost:5173")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sections", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("expected allowed origin header")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/sections", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("unexpected CORS header for foreign origin")
	}
}
