package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"pets-api/internal/platform/logger"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con el logger del request y
// responde 500 con el mismo formato {"detail": ...} que el resto de la API.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			// http.ErrAbortHandler se propaga tal cual (lo usa net/http para cortar la conexión).
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered", map[string]any{
				"panic": rec,
				"path":  r.URL.Path,
				"stack": string(debug.Stack()),
			})

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "A server error occurred."})
		}()

		next.ServeHTTP(w, r)
	})
}
