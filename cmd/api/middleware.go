package main

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// sessionHeader carries the opaque cart session id. The middleware
// issues one for first-time visitors and always echoes it back so the
// client can persist it.
const sessionHeader = "X-Cart-Session"

type ctxKey string

const sessionCtxKey ctxKey = "cartSession"

func (app *application) CartSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := r.Header.Get(sessionHeader)
		if sid == "" || uuid.Validate(sid) != nil {
			sid = app.carts.NewSessionID()
		}

		w.Header().Set(sessionHeader, sid)

		ctx := context.WithValue(r.Context(), sessionCtxKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getSessionID returns the cart session for the request. Only valid
// below CartSessionMiddleware.
func getSessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionCtxKey).(string)
	return sid
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
