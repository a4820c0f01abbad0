package middleware

import (
	"Portfolio/internal/model"
	"context"
	"net/http"
)

// Заголовки, в которых клиент передаёт identity claims.
const (
	HeaderUUID  = "uuid"
	HeaderToken = "token"
)

type ctxKey struct{}

// WithIdentity кладёт в контекст claims из заголовков uuid и token.
// Проверку делает сервис авторизации; здесь только извлечение.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := IdentityFromHeaders(r.Header)
		if claims == (model.IdentityClaims{}) {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, claims)))
	})
}

// IdentityFromHeaders извлекает claims из заголовков запроса.
func IdentityFromHeaders(h http.Header) model.IdentityClaims {
	return model.IdentityClaims{
		UUID:  h.Get(HeaderUUID),
		Token: h.Get(HeaderToken),
	}
}

// GetIdentityFromContext возвращает claims, если клиент их прислал.
func GetIdentityFromContext(ctx context.Context) (model.IdentityClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(model.IdentityClaims)
	return claims, ok
}
