package middleware

import (
	"context"
	"net/http"
	"strings"

	"willow-pups/internal/ports/auth"
)

type ctxKey string

const principalKey ctxKey = "principal"

// SessionCookieName es la cookie que setea el servicio de sesión externo.
const SessionCookieName = "willow_pups_session"

// AuthContext:
// - Si verifier != nil y viene la cookie de sesión => intenta Verify() y setea el principal.
// - Si verifier == nil => modo dev: headers X-Debug-User-ID / X-Debug-Role.
// - Si no hay principal, el request sigue igual; los handlers deciden si exigen auth
//   (las rutas públicas no lo necesitan, las /admin cortan con 401/403).
func AuthContext(verifier auth.SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode: permitir inyectar principal sin verifier
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					role := auth.RoleUser
					if strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Debug-Role")), string(auth.RoleAdmin)) {
						role = auth.RoleAdmin
					}
					p := auth.Principal{UserID: uid, Role: role}
					ctx := context.WithValue(r.Context(), principalKey, p)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}

				next.ServeHTTP(w, r)
				return
			}

			// Verifier mode: sin cookie no hay principal, y no cortamos acá.
			token := sessionToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos para no acoplar. El handler decide 401/403.
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c == nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}
