package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/bookstore-backend/internal/usecase"
	"github.com/google/uuid"
)

// sessionCookieName — cookie анонимной сессии. Токен привязывает
// анонимную корзину к браузеру.
const sessionCookieName = "cart_session"

// Заголовки внешнего слоя аутентификации. Витрина не ведёт свои сессии
// пользователей: проверенные данные приходят от reverse proxy.
const (
	headerUserID    = "X-Auth-User-Id"
	headerFirstName = "X-Auth-First-Name"
	headerLastName  = "X-Auth-Last-Name"
)

type authStateCtxKey struct{}

// SessionMiddleware гарантирует токен анонимной сессии и кладёт состояние
// аутентификации запроса в контекст.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			token = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		auth := &usecase.AuthState{
			SessionToken: token,
			FirstName:    r.Header.Get(headerFirstName),
			LastName:     r.Header.Get(headerLastName),
		}

		if idStr := r.Header.Get(headerUserID); idStr != "" {
			if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
				auth.UserID = &id
			}
		}

		ctx := context.WithValue(r.Context(), authStateCtxKey{}, auth)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// authStateFromCtx возвращает состояние аутентификации запроса.
// Без SessionMiddleware возвращает пустое анонимное состояние.
func authStateFromCtx(ctx context.Context) *usecase.AuthState {
	if auth, ok := ctx.Value(authStateCtxKey{}).(*usecase.AuthState); ok {
		return auth
	}

	return &usecase.AuthState{}
}
