package middleware

import (
	"Portfolio/internal/model"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Тест: заголовки uuid/token попадают в контекст как есть
func TestWithIdentity_HeadersSetClaims(t *testing.T) {
	var got model.IdentityClaims
	var ok bool
	h := WithIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/blog", nil)
	req.Header.Set("uuid", "42")
	req.Header.Set("token", "tok-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if !ok {
		t.Fatalf("claims must be set when headers present")
	}
	if got.UUID != "42" || got.Token != "tok-1" {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

// Тест: без заголовков claims в контексте нет
func TestWithIdentity_NoHeadersLeavesAnonymous(t *testing.T) {
	h := WithIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetIdentityFromContext(r.Context()); ok {
			t.Fatalf("claims must not be set without headers")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: только один заголовок — claims всё равно передаются, решение принимает авторизатор
func TestWithIdentity_PartialHeaders(t *testing.T) {
	h := WithIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetIdentityFromContext(r.Context())
		if !ok || c.Token != "only-token" || c.UUID != "" {
			t.Fatalf("unexpected claims: %+v ok=%v", c, ok)
		}
	}))
	req := httptest.NewRequest(http.MethodDelete, "/blog/x", nil)
	req.Header.Set("token", "only-token")
	h.ServeHTTP(httptest.NewRecorder(), req)
}
