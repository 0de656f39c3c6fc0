package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/jmorillo/sanrifa/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	RolKey    ContextKey = "rol"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RolKey, claims.Rol)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware corta las rutas administrativas para cualquier rol que no
// sea administrador. Debe encadenarse después de AuthMiddleware.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rol, _ := r.Context().Value(RolKey).(string)
		if rol != "administrador" {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext extrae el usuario autenticado del contexto.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}
