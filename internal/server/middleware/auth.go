// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/IvanChernomyrdin/go-userhub/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// TokenCookieName — имя cookie с сессионным токеном.
const TokenCookieName = "token"

// JWTVerifier инкапсулирует параметры проверки сессионных JWT.
//
// Используется в HTTP middleware для:
//   - поиска токена в cookie и заголовке Authorization
//   - проверки подписи токена
//   - валидации issuer и audience
//   - извлечения userID из claims.Subject
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// AuthMiddleware возвращает HTTP middleware для проверки сессионных токенов.
//
// Поиск токена:
//   - сначала cookie "token"
//   - иначе заголовок Authorization: Bearer <token>
//
// Cookie всегда приоритетнее заголовка, если пришли оба.
//
// Все причины отказа (нет токена, битый токен, просрочен, неверная подпись,
// чужой issuer/audience, пустой subject) дают один и тот же ответ
// 401 {"error":"unauthorized"} — чтобы по ответу нельзя было понять,
// что именно не так с токеном.
//
// При успехе userID из claims.Subject кладётся в context.Context.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractToken(r)
			if tokenStr == "" {
				writeUnauthorized(w)
				return
			}

			claims := &jwt.RegisteredClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})
			if err != nil {
				writeUnauthorized(w)
				return
			}

			if v.Issuer != "" && claims.Issuer != v.Issuer {
				writeUnauthorized(w)
				return
			}

			if v.Audience != "" {
				ok := false
				for _, aud := range claims.Audience {
					if aud == v.Audience {
						ok = true
						break
					}
				}
				if !ok {
					writeUnauthorized(w)
					return
				}
			}

			userID := strings.TrimSpace(claims.Subject)
			if userID == "" {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken находит кандидата на сессионный токен в запросе.
//
// Порядок: cookie "token", затем Authorization: Bearer <token>.
// Возвращает пустую строку, если токена нет.
func ExtractToken(r *http.Request) string {
	if c, err := r.Cookie(TokenCookieName); err == nil {
		if s := strings.TrimSpace(c.Value); s != "" {
			return s
		}
	}
	return ExtractBearer(r.Header.Get("Authorization"))
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeUnauthorized пишет единый ответ 401 для всех причин отказа.
// Тело всегда байт-в-байт одинаковое.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + serr.ErrUnauthorized.Error() + `"}` + "\n"))
}
