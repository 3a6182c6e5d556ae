package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"planets-proxy/internal/shared/errors"
	"planets-proxy/internal/shared/response"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger := slog.With("middleware", "recovery")
				response.Error(w, r, logger, errors.WrapInternal("panic recovered", fmt.Errorf("%v", rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
