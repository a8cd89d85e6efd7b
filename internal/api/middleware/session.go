package middleware

import (
	"context"
	"net/http"

	"github.com/universalyoga/UYS-SyncService/internal/api/handlers"
)

// HeaderSessionID заголовок с идентификатором сессии клиента
const HeaderSessionID = "X-Session-ID"

type sessionKey struct{}

const msgMissingSession = "отсутствует заголовок X-Session-ID"

// Session извлекает идентификатор сессии из заголовка и кладет его
// в контекст запроса. Запросы без сессии отклоняются
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(HeaderSessionID)
		if sessionID == "" {
			handlers.RespondBadRequest(w, msgMissingSession)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID возвращает идентификатор сессии из контекста запроса
func SessionID(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok {
		return v
	}
	return ""
}
