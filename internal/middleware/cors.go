package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// WithCORS разрешает кросс-доменные запросы с фронтенда портфолио.
// Заголовки uuid и token должны быть в списке разрешённых, иначе браузер их не пропустит.
// Preflight завершается здесь же ответом 200 без вызова следующего хендлера.
func WithCORS(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "*"
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", HeaderUUID, HeaderToken},
		MaxAge:         300,
	})
}
